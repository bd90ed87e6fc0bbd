package service

import (
	"context"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/pkg/repository"
)

// Feeds is the upstream surface the services consume, satisfied by
// *nasa.Client.
type Feeds interface {
	Apod(ctx context.Context) (*blackhole.ApodModel, error)
	MarsPhotos(ctx context.Context, rover, camera string, sol int) ([]blackhole.MarsPhoto, error)
	EpicFeed(ctx context.Context) ([]blackhole.EpicItem, error)
	Search(ctx context.Context, query string) ([]blackhole.SearchItem, error)
}

type Apod interface {
	Today(ctx context.Context) (*blackhole.ApodModel, error)
	ByDate(ctx context.Context, date time.Time) (*blackhole.ApodModel, error)
	ByDateRange(ctx context.Context, start, end time.Time) ([]blackhole.ApodModel, error)
	Forget(ctx context.Context, date time.Time) (int64, error)
}

type Mars interface {
	Photos(ctx context.Context, rover, camera string, sol int) ([]blackhole.MarsPhoto, error)
}

type Epic interface {
	Feed(ctx context.Context) ([]blackhole.EpicItem, error)
}

type Search interface {
	Query(ctx context.Context, q string) ([]blackhole.SearchItem, error)
	Surprise(ctx context.Context) ([]blackhole.SearchItem, error)
}

type Service struct {
	Apod
	Mars
	Epic
	Search
}

func NewService(repos *repository.Repository, feeds Feeds) *Service {
	return &Service{
		Apod:   NewApodService(repos.Picture, feeds),
		Mars:   NewMarsService(feeds),
		Epic:   NewEpicService(feeds),
		Search: NewSearchService(feeds),
	}
}
