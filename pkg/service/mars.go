package service

import (
	"context"
	"errors"

	blackhole "github.com/MohnajibG/BlackHole"
)

var (
	ErrUnknownRover  = errors.New("unknown rover")
	ErrUnknownCamera = errors.New("unknown camera for rover")
)

// MarsService validates queries against the rover catalog before they
// go upstream. Sol is clamped, never rejected.
type MarsService struct {
	feeds Feeds
}

func NewMarsService(feeds Feeds) *MarsService {
	return &MarsService{feeds: feeds}
}

func (s *MarsService) Photos(ctx context.Context, rover, camera string, sol int) ([]blackhole.MarsPhoto, error) {

	r := blackhole.FindRover(rover)
	if r == nil {
		return nil, ErrUnknownRover
	}

	if camera != "" {
		var found bool
		for _, c := range r.Cameras {
			if c.Abbr == camera {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrUnknownCamera
		}
	}

	return s.feeds.MarsPhotos(ctx, r.Name, camera, r.ClampSol(sol))
}
