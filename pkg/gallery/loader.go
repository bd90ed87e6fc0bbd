package gallery

import (
	"context"
	"sync"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"
)

// DebounceDelay is how long a parameter set has to sit still before a
// fetch fires.
const DebounceDelay = 500 * time.Millisecond

// Query is the Mars page parameter set.
type Query struct {
	Rover  string
	Camera string
	Sol    int
}

// FetchFunc runs the actual network call for a settled query.
type FetchFunc func(ctx context.Context, q Query) ([]blackhole.MarsPhoto, error)

// Result carries a completed, still-fresh fetch back to the page.
type Result struct {
	Seq    uint64
	Query  Query
	Photos []blackhole.MarsPhoto
	Err    error
}

// Loader debounces parameter changes and suppresses stale responses.
// Every flushed fetch is tagged from a monotonic counter at issue time;
// when it completes, the result is applied only if its tag still matches
// the newest issued one. Superseded fetches keep running, their effect
// is just dropped.
type Loader struct {
	mu      sync.Mutex
	fetch   FetchFunc
	apply   func(Result)
	delay   time.Duration
	timer   *time.Timer
	seq     uint64
	pending Query
	closed  bool
}

// NewLoader wires a fetch to an apply callback. apply runs on the
// fetch's goroutine, at most once per issued tag, and never for a
// superseded one.
func NewLoader(fetch FetchFunc, apply func(Result), delay time.Duration) *Loader {
	if delay <= 0 {
		delay = DebounceDelay
	}

	return &Loader{
		fetch: fetch,
		apply: apply,
		delay: delay,
	}
}

// Request schedules a debounced fetch for q. A request arriving before
// the delay elapses restarts the timer, so only the final settled
// parameter set triggers a call. Trailing edge only.
func (l *Loader) Request(q Query) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	l.pending = q
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.delay, l.flush)
}

// Flush skips the debounce window and issues q immediately. Used for
// the initial page load.
func (l *Loader) Flush(q Query) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}

	l.pending = q
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.mu.Unlock()

	l.flush()
}

func (l *Loader) flush() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.seq++
	seq := l.seq
	q := l.pending
	l.mu.Unlock()

	go func() {
		photos, err := l.fetch(context.Background(), q)

		l.mu.Lock()
		fresh := seq == l.seq && !l.closed
		l.mu.Unlock()

		// a newer request was issued while this one was in flight
		if !fresh {
			return
		}

		l.apply(Result{Seq: seq, Query: q, Photos: photos, Err: err})
	}()
}

// Close stops the pending timer and suppresses any in-flight result.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}
