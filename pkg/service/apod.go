package service

import (
	"context"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/pkg/repository"

	"github.com/sirupsen/logrus"
)

// ApodService serves the picture of the day through the postgres cache:
// a row for today means no upstream call at all.
type ApodService struct {
	repo  repository.Picture
	feeds Feeds
}

func NewApodService(repo repository.Picture, feeds Feeds) *ApodService {
	return &ApodService{repo: repo, feeds: feeds}
}

func (s *ApodService) Today(ctx context.Context) (*blackhole.ApodModel, error) {

	cached, err := s.repo.GetByDate(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	if cached != nil {
		return cached, nil
	}

	md, err := s.feeds.Apod(ctx)
	if err != nil {
		return nil, err
	}

	// the cache is best effort, a failed insert must not hide the record
	if _, err := s.repo.InsertOne(ctx, md); err != nil {
		logrus.Errorf("apod cache insert failed: %q", err)
	}

	return md, nil
}

// ByDate looks a stored record up, nil when that day was never cached.
func (s *ApodService) ByDate(ctx context.Context, date time.Time) (*blackhole.ApodModel, error) {
	return s.repo.GetByDate(ctx, date)
}

// ByDateRange lists every stored record between start and end inclusive.
func (s *ApodService) ByDateRange(ctx context.Context, start, end time.Time) ([]blackhole.ApodModel, error) {
	return s.repo.GetByDateRange(ctx, start, end)
}

// Forget drops a cached record so the next request refetches it.
func (s *ApodService) Forget(ctx context.Context, date time.Time) (int64, error) {
	return s.repo.DeleteByDate(ctx, date)
}
