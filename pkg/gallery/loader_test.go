package gallery

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"

	"github.com/stretchr/testify/require"
)

func collectResults() (chan Result, func(Result)) {
	ch := make(chan Result, 16)
	return ch, func(r Result) { ch <- r }
}

func TestLoaderDebounce(t *testing.T) {

	var calls int32
	var lastQuery atomic.Value

	fetch := func(ctx context.Context, q Query) ([]blackhole.MarsPhoto, error) {
		atomic.AddInt32(&calls, 1)
		lastQuery.Store(q)
		return []blackhole.MarsPhoto{{ID: q.Sol}}, nil
	}

	results, apply := collectResults()
	l := NewLoader(fetch, apply, 50*time.Millisecond)
	defer l.Close()

	// a burst of changes inside the window must collapse to one fetch
	for sol := 0; sol < 10; sol++ {
		l.Request(Query{Rover: "curiosity", Sol: sol})
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case r := <-results:
		require.NoError(t, r.Err)
		require.Equal(t, Query{Rover: "curiosity", Sol: 9}, r.Query)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced fetch never fired")
	}

	// nothing else may arrive
	select {
	case r := <-results:
		t.Fatalf("unexpected extra result: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}

	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Equal(t, Query{Rover: "curiosity", Sol: 9}, lastQuery.Load())
}

func TestLoaderStaleResponseSuppressed(t *testing.T) {

	release := map[int]chan struct{}{
		1: make(chan struct{}),
		2: make(chan struct{}),
	}

	fetch := func(ctx context.Context, q Query) ([]blackhole.MarsPhoto, error) {
		<-release[q.Sol]
		return []blackhole.MarsPhoto{{ID: q.Sol}}, nil
	}

	results, apply := collectResults()
	l := NewLoader(fetch, apply, 10*time.Millisecond)
	defer l.Close()

	l.Flush(Query{Sol: 1})
	l.Flush(Query{Sol: 2})

	// the newer request completes first, then the slow old one
	close(release[2])

	select {
	case r := <-results:
		require.NoError(t, r.Err)
		require.Equal(t, 2, r.Query.Sol)
	case <-time.After(2 * time.Second):
		t.Fatal("fresh result never applied")
	}

	close(release[1])

	select {
	case r := <-results:
		t.Fatalf("stale result leaked through: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestLoaderFetchErrorIsApplied(t *testing.T) {

	fetch := func(ctx context.Context, q Query) ([]blackhole.MarsPhoto, error) {
		return nil, errors.New("boom")
	}

	results, apply := collectResults()
	l := NewLoader(fetch, apply, time.Millisecond)
	defer l.Close()

	l.Flush(Query{Sol: 7})

	select {
	case r := <-results:
		require.Error(t, r.Err)
		require.Nil(t, r.Photos)
	case <-time.After(2 * time.Second):
		t.Fatal("error result never applied")
	}
}

func TestLoaderCloseSuppressesEverything(t *testing.T) {

	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context, q Query) ([]blackhole.MarsPhoto, error) {
		close(started)
		<-release
		return []blackhole.MarsPhoto{{ID: 1}}, nil
	}

	results, apply := collectResults()
	l := NewLoader(fetch, apply, time.Millisecond)

	l.Flush(Query{Sol: 1})
	<-started

	l.Close()
	close(release)

	select {
	case r := <-results:
		t.Fatalf("result applied after close: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}

	// requests after close are ignored
	l.Request(Query{Sol: 2})
	select {
	case r := <-results:
		t.Fatalf("request after close fired: %+v", r)
	case <-time.After(100 * time.Millisecond):
	}
}
