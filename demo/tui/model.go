package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/demo/client"
	"github.com/MohnajibG/BlackHole/pkg/gallery"
)

// Page identifies one of the four gallery pages
type Page int

const (
	PageHome Page = iota
	PageMars
	PageEpic
	PageApod
	pageCount
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageMars:
		return "Mars"
	case PageEpic:
		return "EPIC"
	case PageApod:
		return "APOD"
	}
	return "?"
}

// fixed user-facing messages, one per page
const (
	errHome = "Could not load images. Press 's' to try again."
	errMars = "Could not load Mars photos. Change the query to retry."
	errEpic = "Could not load Earth imagery."
	errApod = "Could not load the picture of the day."
)

// Model holds the whole gallery state. Every page owns its own data,
// loading flag and error line, nothing is shared between them.
type Model struct {
	Client *client.Client

	page    Page
	spinner spinner.Model
	rng     *rand.Rand

	// home / search
	homeItems   []blackhole.SearchItem
	homeSel     gallery.Carousel
	homeInput   textinput.Model
	homeTyping  bool
	homeLoading bool
	homeErr     string

	// mars
	roverIdx    int
	cameraIdx   int // 0 means all cameras
	sol         int
	marsPhotos  []blackhole.MarsPhoto
	marsSel     gallery.Carousel
	lightbox    bool
	marsLoader  *gallery.Loader
	marsResults chan gallery.Result
	marsLoading bool
	marsErr     string

	// epic
	epicItems   []blackhole.EpicItem
	epicSel     gallery.Carousel
	epicLoading bool
	epicErr     string

	// apod
	apod        *blackhole.ApodModel
	apodLoading bool
	apodErr     string
}

// NewModel wires the gallery to a blackhole server.
func NewModel(serverURL string) Model {

	c := client.NewClient(serverURL)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimary))

	ti := textinput.New()
	ti.Placeholder = "search the image library"
	ti.CharLimit = 64

	results := make(chan gallery.Result, 8)

	loader := gallery.NewLoader(
		func(ctx context.Context, q gallery.Query) ([]blackhole.MarsPhoto, error) {
			return c.MarsPhotos(q.Rover, q.Camera, q.Sol)
		},
		func(r gallery.Result) { results <- r },
		gallery.DebounceDelay,
	)

	return Model{
		Client:      c,
		page:        PageHome,
		spinner:     sp,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		homeInput:   ti,
		homeSel:     gallery.NewCarousel(0),
		sol:         1000,
		marsSel:     gallery.NewCarousel(0),
		marsLoader:  loader,
		marsResults: results,
		epicSel:     gallery.NewCarousel(0),
		homeLoading: true,
		marsLoading: true,
		epicLoading: true,
		apodLoading: true,
	}
}

// Init implements tea.Model, kicking off all four pages at once.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchSurprise(m.Client),
		flushMars(m.marsLoader, m.marsQuery()),
		waitForMars(m.marsResults),
		fetchEpic(m.Client),
		fetchApod(m.Client),
	)
}

// rover returns the currently selected mission.
func (m Model) rover() *blackhole.Rover {
	return &blackhole.Rovers[m.roverIdx]
}

// camera returns the selected abbreviation, empty for all cameras.
func (m Model) camera() string {
	if m.cameraIdx == 0 {
		return ""
	}
	return m.rover().Cameras[m.cameraIdx-1].Abbr
}

// marsQuery assembles the current parameter set with the sol clamped.
func (m Model) marsQuery() gallery.Query {
	return gallery.Query{
		Rover:  m.rover().Name,
		Camera: m.camera(),
		Sol:    m.rover().ClampSol(m.sol),
	}
}
