package tui

import (
	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/pkg/gallery"
)

// Messages for the tea program, one per completed fetch

// HomeResultMsg carries a surprise-me or free-text search result.
type HomeResultMsg struct {
	Items []blackhole.SearchItem
	Err   error
}

// MarsResultMsg wraps a loader result that survived the staleness
// check.
type MarsResultMsg struct {
	Result gallery.Result
}

// EpicResultMsg carries the Earth feed.
type EpicResultMsg struct {
	Items []blackhole.EpicItem
	Err   error
}

// ApodResultMsg carries the picture of the day.
type ApodResultMsg struct {
	Record *blackhole.ApodModel
	Err    error
}
