package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MohnajibG/BlackHole/demo/client"
	"github.com/MohnajibG/BlackHole/pkg/gallery"
)

// fetchSurprise creates a command that rolls a fresh random set
func fetchSurprise(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := c.Surprise()
		return HomeResultMsg{Items: items, Err: err}
	}
}

// fetchSearch creates a command that runs a free-text search
func fetchSearch(c *client.Client, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := c.Search(query)
		return HomeResultMsg{Items: items, Err: err}
	}
}

// fetchEpic creates a command that loads the Earth feed
func fetchEpic(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		items, err := c.EpicFeed()
		return EpicResultMsg{Items: items, Err: err}
	}
}

// fetchApod creates a command that loads the picture of the day
func fetchApod(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		md, err := c.Apod()
		return ApodResultMsg{Record: md, Err: err}
	}
}

// requestMars hands the query to the debounced loader, the answer comes
// back through waitForMars
func requestMars(l *gallery.Loader, q gallery.Query) tea.Cmd {
	return func() tea.Msg {
		l.Request(q)
		return nil
	}
}

// flushMars skips the debounce window, used for the initial load
func flushMars(l *gallery.Loader, q gallery.Query) tea.Cmd {
	return func() tea.Msg {
		l.Flush(q)
		return nil
	}
}

// waitForMars blocks on the loader's result channel and re-arms itself
// after every message
func waitForMars(ch chan gallery.Result) tea.Cmd {
	return func() tea.Msg {
		return MarsResultMsg{Result: <-ch}
	}
}
