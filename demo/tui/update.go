package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	blackhole "github.com/MohnajibG/BlackHole"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case HomeResultMsg:
		return m.handleHomeResult(msg)
	case MarsResultMsg:
		return m.handleMarsResult(msg)
	case EpicResultMsg:
		return m.handleEpicResult(msg)
	case ApodResultMsg:
		return m.handleApodResult(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress routes keys to the active page
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {

	// the search box swallows everything except escape and enter
	if m.homeTyping {
		return m.handleTyping(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.marsLoader.Close()
		return m, tea.Quit
	case "tab":
		m.page = (m.page + 1) % pageCount
		return m, nil
	case "shift+tab":
		m.page = (m.page - 1 + pageCount) % pageCount
		return m, nil
	}

	switch m.page {
	case PageHome:
		return m.handleHomeKey(msg)
	case PageMars:
		return m.handleMarsKey(msg)
	case PageEpic:
		return m.handleEpicKey(msg)
	}
	return m, nil
}

func (m Model) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.homeTyping = false
		m.homeInput.Blur()
		return m, nil
	case "enter":
		query := m.homeInput.Value()
		m.homeTyping = false
		m.homeInput.Blur()
		if query == "" {
			return m, nil
		}
		m.homeLoading = true
		return m, fetchSearch(m.Client, query)
	}

	var cmd tea.Cmd
	m.homeInput, cmd = m.homeInput.Update(msg)
	return m, cmd
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.homeTyping = true
		m.homeInput.Focus()
		return m, nil
	case "s":
		m.homeLoading = true
		return m, fetchSurprise(m.Client)
	case "left", "h":
		m.homeSel.Prev()
	case "right", "l":
		m.homeSel.Next()
	}
	return m, nil
}

func (m Model) handleMarsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {

	switch msg.String() {
	case "left", "h":
		m.marsSel.Prev()
		return m, nil
	case "right", "l":
		m.marsSel.Next()
		return m, nil
	case "x":
		m.marsSel.Random(m.rng)
		return m, nil
	case "enter":
		if m.marsSel.Index() >= 0 {
			m.lightbox = true
		}
		return m, nil
	case "esc":
		if m.lightbox {
			m.lightbox = false
			m.marsSel.Close()
		}
		return m, nil
	}

	// parameter keys, every one of them goes through the debounced loader
	changed := false
	switch msg.String() {
	case "r":
		m.roverIdx = (m.roverIdx + 1) % len(blackhole.Rovers)
		m.cameraIdx = 0
		changed = true
	case "c":
		m.cameraIdx = (m.cameraIdx + 1) % (len(m.rover().Cameras) + 1)
		changed = true
	case "+", "=":
		m.sol = m.rover().ClampSol(m.sol + 1)
		changed = true
	case "-":
		m.sol = m.rover().ClampSol(m.sol - 1)
		changed = true
	case "]":
		m.sol = m.rover().ClampSol(m.sol + 100)
		changed = true
	case "[":
		m.sol = m.rover().ClampSol(m.sol - 100)
		changed = true
	}

	if !changed {
		return m, nil
	}

	m.marsLoading = true
	return m, requestMars(m.marsLoader, m.marsQuery())
}

func (m Model) handleEpicKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.epicSel.Prev()
	case "right", "l":
		m.epicSel.Next()
	case "x":
		m.epicSel.Random(m.rng)
	}
	return m, nil
}

// handleHomeResult applies a search or surprise result
func (m Model) handleHomeResult(msg HomeResultMsg) (tea.Model, tea.Cmd) {
	m.homeLoading = false
	if msg.Err != nil {
		// prior items stay on screen
		m.homeErr = errHome
		return m, nil
	}
	m.homeErr = ""
	m.homeItems = msg.Items
	m.homeSel.Reset(len(msg.Items))
	return m, nil
}

// handleMarsResult applies a loader result. The loader has already
// dropped anything stale, so whatever arrives here is the newest fetch.
func (m Model) handleMarsResult(msg MarsResultMsg) (tea.Model, tea.Cmd) {
	m.marsLoading = false
	if msg.Result.Err != nil {
		m.marsErr = errMars
		return m, waitForMars(m.marsResults)
	}
	m.marsErr = ""
	m.marsPhotos = msg.Result.Photos
	m.marsSel.Reset(len(msg.Result.Photos))
	m.lightbox = false
	return m, waitForMars(m.marsResults)
}

func (m Model) handleEpicResult(msg EpicResultMsg) (tea.Model, tea.Cmd) {
	m.epicLoading = false
	if msg.Err != nil {
		m.epicErr = errEpic
		return m, nil
	}
	m.epicErr = ""
	m.epicItems = msg.Items
	m.epicSel.Reset(len(msg.Items))
	return m, nil
}

func (m Model) handleApodResult(msg ApodResultMsg) (tea.Model, tea.Cmd) {
	m.apodLoading = false
	if msg.Err != nil {
		m.apodErr = errApod
		return m, nil
	}
	m.apodErr = ""
	m.apod = msg.Record
	return m, nil
}
