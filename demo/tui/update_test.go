package tui

import (
	"errors"
	"testing"

	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/pkg/gallery"

	"github.com/stretchr/testify/require"
)

func TestEmptyResultRendersEmptyState(t *testing.T) {

	m := NewModel("")
	m.page = PageMars

	updated, _ := m.handleMarsResult(MarsResultMsg{Result: gallery.Result{Photos: nil}})
	m = updated.(Model)

	require.False(t, m.marsLoading)
	require.Equal(t, -1, m.marsSel.Index())

	// must not panic on an empty list
	view := m.View()
	require.Contains(t, view, "No photos for this query")
}

func TestMarsErrorKeepsPriorPhotos(t *testing.T) {

	m := NewModel("")
	m.page = PageMars

	photos := []blackhole.MarsPhoto{{ID: 1, Camera: "FHAZ", ImgSrc: "https://mars.test/1.jpg"}}
	updated, _ := m.handleMarsResult(MarsResultMsg{Result: gallery.Result{Photos: photos}})
	m = updated.(Model)
	require.Len(t, m.marsPhotos, 1)
	require.Equal(t, 0, m.marsSel.Index())

	updated, _ = m.handleMarsResult(MarsResultMsg{Result: gallery.Result{Err: errors.New("boom")}})
	m = updated.(Model)

	// error banner, data untouched
	require.Equal(t, errMars, m.marsErr)
	require.Len(t, m.marsPhotos, 1)

	view := m.View()
	require.Contains(t, view, errMars)
}

func TestHomeErrorKeepsPriorItems(t *testing.T) {

	m := NewModel("")

	items := []blackhole.SearchItem{{Title: "Mars Dunes", URL: "https://images.test/dunes.jpg"}}
	updated, _ := m.handleHomeResult(HomeResultMsg{Items: items})
	m = updated.(Model)
	require.Len(t, m.homeItems, 1)

	updated, _ = m.handleHomeResult(HomeResultMsg{Err: errors.New("boom")})
	m = updated.(Model)

	require.Equal(t, errHome, m.homeErr)
	require.Len(t, m.homeItems, 1)
}

func TestRefetchResetsSelection(t *testing.T) {

	m := NewModel("")

	photos := []blackhole.MarsPhoto{{ID: 1}, {ID: 2}, {ID: 3}}
	updated, _ := m.handleMarsResult(MarsResultMsg{Result: gallery.Result{Photos: photos}})
	m = updated.(Model)

	m.marsSel.Select(2)
	m.lightbox = true

	updated, _ = m.handleMarsResult(MarsResultMsg{Result: gallery.Result{Photos: photos[:2]}})
	m = updated.(Model)

	require.Equal(t, 0, m.marsSel.Index())
	require.False(t, m.lightbox)
}
