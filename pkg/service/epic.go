package service

import (
	"context"

	blackhole "github.com/MohnajibG/BlackHole"
)

type EpicService struct {
	feeds Feeds
}

func NewEpicService(feeds Feeds) *EpicService {
	return &EpicService{feeds: feeds}
}

func (s *EpicService) Feed(ctx context.Context) ([]blackhole.EpicItem, error) {
	return s.feeds.EpicFeed(ctx)
}
