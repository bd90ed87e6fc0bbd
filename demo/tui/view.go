package tui

import (
	"fmt"
	"strings"

	"github.com/MohnajibG/BlackHole/pkg/consts"
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("🌌 BlackHole — NASA image gallery"))
	b.WriteString("\n")

	// page tabs
	var tabs []string
	for p := PageHome; p < pageCount; p++ {
		if p == m.page {
			tabs = append(tabs, ActiveTabStyle.Render(p.String()))
		} else {
			tabs = append(tabs, TabStyle.Render(p.String()))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	switch m.page {
	case PageHome:
		b.WriteString(m.viewHome())
	case PageMars:
		b.WriteString(m.viewMars())
	case PageEpic:
		b.WriteString(m.viewEpic())
	case PageApod:
		b.WriteString(m.viewApod())
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())

	return b.String()
}

func (m Model) viewHome() string {
	var b strings.Builder

	if m.homeTyping {
		b.WriteString(m.homeInput.View())
		b.WriteString("\n\n")
	}

	if m.homeErr != "" {
		b.WriteString(ErrorStyle.Render(m.homeErr))
		b.WriteString("\n\n")
	}

	if m.homeLoading {
		b.WriteString(m.spinner.View() + StatusStyle.Render(" loading images..."))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.homeItems) == 0 {
		b.WriteString(InfoStyle.Render("Nothing here yet. Press 's' for a surprise or '/' to search."))
		b.WriteString("\n")
		return b.String()
	}

	for i, it := range m.homeItems {
		line := fmt.Sprintf("%s\n    %s", it.Title, InfoStyle.Render(it.URL))
		if i == m.homeSel.Index() {
			b.WriteString(SelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewMars() string {
	var b strings.Builder

	cam := m.camera()
	if cam == "" {
		cam = "all cameras"
	}
	query := fmt.Sprintf("rover: %s | camera: %s | sol: %d/%d",
		m.rover().Name, cam, m.rover().ClampSol(m.sol), m.rover().MaxSol)
	b.WriteString(StatusStyle.Render(query))
	b.WriteString("\n\n")

	if m.marsErr != "" {
		b.WriteString(ErrorStyle.Render(m.marsErr))
		b.WriteString("\n\n")
	}

	if m.marsLoading {
		b.WriteString(m.spinner.View() + StatusStyle.Render(" loading photos..."))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.marsPhotos) == 0 {
		b.WriteString(InfoStyle.Render("No photos for this query. Try another sol or camera."))
		b.WriteString("\n")
		return b.String()
	}

	// lightbox replaces the grid while open
	if m.lightbox && m.marsSel.Index() >= 0 {
		p := m.marsPhotos[m.marsSel.Index()]
		box := fmt.Sprintf("%s\n%s\n\n%s\n\n%s",
			HighlightStyle.Render(fmt.Sprintf("Photo %d/%d", m.marsSel.Index()+1, m.marsSel.Len())),
			SelectedStyle.Render(p.CameraFullName),
			p.ImgSrc,
			InfoStyle.Render(fmt.Sprintf("%s | sol %d | %s", p.Rover, p.Sol, p.EarthDate)))
		b.WriteString(BoxStyle.Render(box))
		b.WriteString("\n")
		return b.String()
	}

	// hero
	if m.marsSel.Index() >= 0 {
		hero := m.marsPhotos[m.marsSel.Index()]
		b.WriteString(SelectedStyle.Render(fmt.Sprintf("▸ %s — %s", hero.Camera, hero.ImgSrc)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(InfoStyle.Render("No photo selected — use ←/→"))
		b.WriteString("\n\n")
	}

	// grid
	for i, p := range m.marsPhotos {
		marker := "  "
		if i == m.marsSel.Index() {
			marker = "▸ "
		}
		b.WriteString(fmt.Sprintf("%s#%d %s\n", marker, p.ID, InfoStyle.Render(p.Camera)))
	}

	return b.String()
}

func (m Model) viewEpic() string {
	var b strings.Builder

	if m.epicErr != "" {
		b.WriteString(ErrorStyle.Render(m.epicErr))
		b.WriteString("\n\n")
	}

	if m.epicLoading {
		b.WriteString(m.spinner.View() + StatusStyle.Render(" loading Earth imagery..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.epicSel.Empty() {
		b.WriteString(InfoStyle.Render("The feed is empty."))
		b.WriteString("\n")
		return b.String()
	}

	it := m.epicItems[m.epicSel.Index()]
	box := fmt.Sprintf("%s\n\n%s\n\n%s\n%s",
		HighlightStyle.Render(fmt.Sprintf("Earth %d/%d", m.epicSel.Index()+1, m.epicSel.Len())),
		it.Caption,
		it.ImgSrc,
		InfoStyle.Render(it.Date))
	b.WriteString(BoxStyle.Render(box))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewApod() string {
	var b strings.Builder

	if m.apodErr != "" {
		b.WriteString(ErrorStyle.Render(m.apodErr))
		b.WriteString("\n\n")
	}

	if m.apodLoading {
		b.WriteString(m.spinner.View() + StatusStyle.Render(" loading picture of the day..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.apod == nil {
		b.WriteString(InfoStyle.Render("Nothing to show."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(SelectedStyle.Render(m.apod.Title))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(m.apod.Date))
	if m.apod.Copyright != "" {
		b.WriteString(InfoStyle.Render(" © " + m.apod.Copyright))
	}
	b.WriteString("\n\n")

	if m.apod.MediaType == consts.MediaVideo {
		b.WriteString(StatusStyle.Render("▶ video: " + m.apod.URL))
	} else if m.apod.HDURL != "" {
		b.WriteString(m.apod.HDURL)
	} else {
		b.WriteString(m.apod.URL)
	}
	b.WriteString("\n\n")

	b.WriteString(m.apod.Explanation)
	b.WriteString("\n")

	return b.String()
}

func (m Model) helpLine() string {
	common := "tab: pages | q: quit"
	switch m.page {
	case PageHome:
		return InfoStyle.Render("←/→: browse | /: search | s: surprise me | " + common)
	case PageMars:
		if m.lightbox {
			return InfoStyle.Render("←/→: prev/next | x: random | esc: close | " + common)
		}
		return InfoStyle.Render("←/→: select | enter: lightbox | r: rover | c: camera | +/-/[/]: sol | " + common)
	case PageEpic:
		return InfoStyle.Render("←/→: prev/next | x: random | " + common)
	}
	return InfoStyle.Render(common)
}
