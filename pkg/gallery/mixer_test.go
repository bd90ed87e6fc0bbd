package gallery

import (
	"fmt"
	"math/rand"
	"testing"

	blackhole "github.com/MohnajibG/BlackHole"

	"github.com/stretchr/testify/require"
)

func items(prefix string, n int) []blackhole.SearchItem {
	out := make([]blackhole.SearchItem, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, blackhole.SearchItem{
			Title: fmt.Sprintf("%s %d", prefix, i),
			URL:   fmt.Sprintf("https://images.test/%s/%d.jpg", prefix, i),
		})
	}
	return out
}

func TestDedupeFirstWins(t *testing.T) {

	in := []blackhole.SearchItem{
		{Title: "first", URL: "https://images.test/a.jpg"},
		{Title: "other", URL: "https://images.test/b.jpg"},
		{Title: "duplicate", URL: "https://images.test/a.jpg"},
	}

	out := Dedupe(in)

	require.Len(t, out, 2)
	require.Equal(t, "first", out[0].Title)
	require.Equal(t, "other", out[1].Title)
}

func TestMixNoDuplicateURLs(t *testing.T) {

	shared := blackhole.SearchItem{Title: "shared", URL: "https://images.test/shared.jpg"}

	batches := [][]blackhole.SearchItem{
		append(items("mars", 4), shared),
		append(items("moon", 4), shared),
	}

	out := Mix(batches, 0, rand.New(rand.NewSource(7)))

	seen := map[string]bool{}
	for _, it := range out {
		require.False(t, seen[it.URL], "duplicate url %s", it.URL)
		seen[it.URL] = true
	}
	require.Len(t, out, 9)
}

func TestMixTruncatesToLimit(t *testing.T) {

	// 5, 0 and 7 unique items mix into at most 12
	batches := [][]blackhole.SearchItem{
		items("mars", 5),
		nil,
		items("jupiter", 7),
	}

	out := Mix(batches, 12, rand.New(rand.NewSource(1)))
	require.Len(t, out, 12)

	out = Mix(batches, 8, rand.New(rand.NewSource(1)))
	require.Len(t, out, 8)
}

func TestMixEmptyInput(t *testing.T) {

	out := Mix(nil, 12, rand.New(rand.NewSource(1)))
	require.Empty(t, out)

	out = Mix([][]blackhole.SearchItem{nil, nil}, 12, rand.New(rand.NewSource(1)))
	require.Empty(t, out)
}

func TestMixKeepsAllItems(t *testing.T) {

	batches := [][]blackhole.SearchItem{items("nebula", 6)}
	out := Mix(batches, 12, rand.New(rand.NewSource(3)))

	require.Len(t, out, 6)

	want := map[string]bool{}
	for _, it := range batches[0] {
		want[it.URL] = true
	}
	for _, it := range out {
		require.True(t, want[it.URL])
	}
}

func TestSampleTopicsDistinct(t *testing.T) {

	pool := []string{"mars", "moon", "jupiter", "saturn", "nebula"}
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		topics := SampleTopics(pool, 3, rng)
		require.Len(t, topics, 3)

		seen := map[string]bool{}
		for _, tp := range topics {
			require.Contains(t, pool, tp)
			require.False(t, seen[tp], "topic %s sampled twice", tp)
			seen[tp] = true
		}
	}

	// asking for more than the pool holds returns the whole pool
	topics := SampleTopics(pool, 10, rng)
	require.Len(t, topics, len(pool))
}
