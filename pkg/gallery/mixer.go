package gallery

import (
	"math/rand"

	blackhole "github.com/MohnajibG/BlackHole"
)

// Dedupe drops entries sharing a URL with an earlier one. First
// occurrence wins, input order is kept.
func Dedupe(items []blackhole.SearchItem) []blackhole.SearchItem {

	seen := make(map[string]struct{}, len(items))
	out := make([]blackhole.SearchItem, 0, len(items))

	for _, it := range items {
		if _, ok := seen[it.URL]; ok {
			continue
		}
		seen[it.URL] = struct{}{}
		out = append(out, it)
	}

	return out
}

// Mix flattens the per-topic batches, dedupes by URL, shuffles the
// unique set and truncates to limit. The final order is intentionally
// random, it carries no meaning.
func Mix(batches [][]blackhole.SearchItem, limit int, rng *rand.Rand) []blackhole.SearchItem {

	var flat []blackhole.SearchItem
	for _, b := range batches {
		flat = append(flat, b...)
	}

	unique := Dedupe(flat)

	rng.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
	}

	return unique
}

// SampleTopics picks n distinct topics from pool. With n >= len(pool)
// the whole pool comes back shuffled.
func SampleTopics(pool []string, n int, rng *rand.Rand) []string {

	idx := rng.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}

	topics := make([]string, 0, n)
	for _, i := range idx[:n] {
		topics = append(topics, pool[i])
	}

	return topics
}
