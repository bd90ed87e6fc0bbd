package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/pkg/consts"

	"github.com/stretchr/testify/require"
)

type fakeFeeds struct {
	apod       *blackhole.ApodModel
	apodErr    error
	apodCalls  int32
	photos     []blackhole.MarsPhoto
	marsErr    error
	lastRover  string
	lastCamera string
	lastSol    int
	epic       []blackhole.EpicItem
	epicErr    error
	search     map[string][]blackhole.SearchItem
	searchErr  map[string]error
}

func (f *fakeFeeds) Apod(ctx context.Context) (*blackhole.ApodModel, error) {
	atomic.AddInt32(&f.apodCalls, 1)
	return f.apod, f.apodErr
}

func (f *fakeFeeds) MarsPhotos(ctx context.Context, rover, camera string, sol int) ([]blackhole.MarsPhoto, error) {
	f.lastRover, f.lastCamera, f.lastSol = rover, camera, sol
	return f.photos, f.marsErr
}

func (f *fakeFeeds) EpicFeed(ctx context.Context) ([]blackhole.EpicItem, error) {
	return f.epic, f.epicErr
}

func (f *fakeFeeds) Search(ctx context.Context, query string) ([]blackhole.SearchItem, error) {
	if err, ok := f.searchErr[query]; ok {
		return nil, err
	}
	return f.search[query], nil
}

type fakeRepo struct {
	stored  map[string]*blackhole.ApodModel
	getErr  error
	inserts int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: map[string]*blackhole.ApodModel{}}
}

func (r *fakeRepo) InsertOne(ctx context.Context, p *blackhole.ApodModel) (int64, error) {
	r.inserts++
	r.stored[p.Date] = p
	return 1, nil
}

func (r *fakeRepo) GetByDate(ctx context.Context, date time.Time) (*blackhole.ApodModel, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.stored[date.Format(consts.TimeFormat)], nil
}

func (r *fakeRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]blackhole.ApodModel, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	var out []blackhole.ApodModel
	for d, md := range r.stored {
		if d >= start.Format(consts.TimeFormat) && d <= end.Format(consts.TimeFormat) {
			out = append(out, *md)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	if _, ok := r.stored[date.Format(consts.TimeFormat)]; !ok {
		return 0, nil
	}
	delete(r.stored, date.Format(consts.TimeFormat))
	return 1, nil
}

func TestApodCacheMissThenHit(t *testing.T) {

	today := time.Now().Format(consts.TimeFormat)
	feeds := &fakeFeeds{apod: &blackhole.ApodModel{Date: today, Title: "Pillars of Creation"}}
	repo := newFakeRepo()

	s := NewApodService(repo, feeds)

	md, err := s.Today(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Pillars of Creation", md.Title)
	require.Equal(t, 1, repo.inserts)

	// second call the same day is served from the cache
	md, err = s.Today(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Pillars of Creation", md.Title)
	require.Equal(t, int32(1), atomic.LoadInt32(&feeds.apodCalls))
}

func TestApodStoredLookups(t *testing.T) {

	repo := newFakeRepo()
	repo.stored["2022-01-01"] = &blackhole.ApodModel{Date: "2022-01-01", Title: "one"}
	repo.stored["2022-01-05"] = &blackhole.ApodModel{Date: "2022-01-05", Title: "two"}
	repo.stored["2022-03-01"] = &blackhole.ApodModel{Date: "2022-03-01", Title: "outside"}

	s := NewApodService(repo, &fakeFeeds{})

	day := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	md, err := s.ByDate(context.Background(), day)
	require.NoError(t, err)
	require.Equal(t, "one", md.Title)

	// an uncached date is nil, not an error
	md, err = s.ByDate(context.Background(), time.Date(2021, 6, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Nil(t, md)

	list, err := s.ByDateRange(context.Background(), day, time.Date(2022, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, list, 2)

	n, err := s.Forget(context.Background(), day)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	md, err = s.ByDate(context.Background(), day)
	require.NoError(t, err)
	require.Nil(t, md)

	// forgetting twice affects nothing
	n, err = s.Forget(context.Background(), day)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}

func TestApodUpstreamFailure(t *testing.T) {

	feeds := &fakeFeeds{apodErr: errors.New("boom")}
	s := NewApodService(newFakeRepo(), feeds)

	_, err := s.Today(context.Background())
	require.Error(t, err)
}

func TestMarsClampsSol(t *testing.T) {

	feeds := &fakeFeeds{photos: []blackhole.MarsPhoto{{ID: 1}}}
	s := NewMarsService(feeds)

	_, err := s.Photos(context.Background(), "spirit", "", 999999)
	require.NoError(t, err)
	require.Equal(t, 2208, feeds.lastSol)

	_, err = s.Photos(context.Background(), "spirit", "", -5)
	require.NoError(t, err)
	require.Equal(t, 0, feeds.lastSol)
}

func TestMarsRejectsUnknownRoverAndCamera(t *testing.T) {

	s := NewMarsService(&fakeFeeds{})

	_, err := s.Photos(context.Background(), "beagle2", "", 10)
	require.ErrorIs(t, err, ErrUnknownRover)

	_, err = s.Photos(context.Background(), "spirit", "MAST", 10)
	require.ErrorIs(t, err, ErrUnknownCamera)

	_, err = s.Photos(context.Background(), "curiosity", "MAST", 10)
	require.NoError(t, err)
}

func TestSearchQueryDedupes(t *testing.T) {

	feeds := &fakeFeeds{search: map[string][]blackhole.SearchItem{
		"orion": {
			{Title: "a", URL: "https://images.test/1.jpg"},
			{Title: "b", URL: "https://images.test/1.jpg"},
			{Title: "c", URL: "https://images.test/2.jpg"},
		},
	}}

	s := NewSearchService(feeds)

	items, err := s.Query(context.Background(), "orion")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "a", items[0].Title)
}

func TestSurpriseMergesWithoutDuplicates(t *testing.T) {

	search := map[string][]blackhole.SearchItem{}
	for _, topic := range consts.SurpriseTopicPool {
		search[topic] = []blackhole.SearchItem{
			{Title: topic, URL: "https://images.test/" + topic + ".jpg"},
			{Title: "shared", URL: "https://images.test/shared.jpg"},
		}
	}

	s := NewSearchService(&fakeFeeds{search: search})

	items, err := s.Surprise(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, items)
	require.LessOrEqual(t, len(items), consts.DisplayCount)

	seen := map[string]bool{}
	for _, it := range items {
		require.False(t, seen[it.URL], "duplicate url %s", it.URL)
		seen[it.URL] = true
	}
}

func TestSurpriseFailsWhole(t *testing.T) {

	search := map[string][]blackhole.SearchItem{}
	searchErr := map[string]error{}
	for _, topic := range consts.SurpriseTopicPool {
		searchErr[topic] = errors.New("boom")
	}

	s := NewSearchService(&fakeFeeds{search: search, searchErr: searchErr})

	_, err := s.Surprise(context.Background())
	require.Error(t, err)
}
