package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/pkg/consts"
	"github.com/MohnajibG/BlackHole/pkg/gallery"
)

// SearchService runs free-text image-library queries and the
// surprise-me roll: a few random topics fetched in parallel, merged,
// deduplicated and shuffled.
type SearchService struct {
	feeds Feeds
}

func NewSearchService(feeds Feeds) *SearchService {
	return &SearchService{feeds: feeds}
}

func (s *SearchService) Query(ctx context.Context, q string) ([]blackhole.SearchItem, error) {

	items, err := s.feeds.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	return gallery.Dedupe(items), nil
}

func (s *SearchService) Surprise(ctx context.Context) ([]blackhole.SearchItem, error) {

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	topics := gallery.SampleTopics(consts.SurpriseTopicPool, consts.SurpriseCount, rng)

	batches := make([][]blackhole.SearchItem, len(topics))
	errs := make([]error, len(topics))

	var wg sync.WaitGroup
	for i, topic := range topics {
		wg.Add(1)
		go func(i int, topic string) {
			defer wg.Done()
			batches[i], errs[i] = s.feeds.Search(ctx, topic)
		}(i, topic)
	}
	wg.Wait()

	// all or nothing, no partial results
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return gallery.Mix(batches, consts.DisplayCount, rng), nil
}
