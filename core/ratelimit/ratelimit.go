package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// RateLimitError reports a rejected admission attempt. It is distinguished
// from the recovery pipeline's errors because it occurs before any model call
// or parsing takes place.
type RateLimitError struct {
	Identifier  string
	MaxRequests int
	Window      time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("ratelimit: %q exceeded %d requests per %s", e.Identifier, e.MaxRequests, e.Window)
}

// Limiter is a concurrency-safe sliding-window admission controller keyed by
// caller identifier. Each identifier's state is independent; a process-wide
// cap is just another call site using a constant identifier.
//
// The read-evict-append sequence runs under a single lock, so Allow is
// linearizable per identifier: two concurrent calls can never both observe
// the pre-eviction count and both be admitted when only one slot remains.
type Limiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	now     func() time.Time
}

// Option configures a Limiter created with [New].
type Option func(*Limiter)

// WithClock replaces the limiter's time source. Intended for tests that need
// to advance time deterministically.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New returns an empty Limiter using the real clock unless overridden.
func New(opts ...Option) *Limiter {
	l := &Limiter{
		windows: make(map[string][]time.Time),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow reports whether a request from identifier is admitted under a bound
// of maxRequests per trailing window. Timestamps older than the window are
// evicted lazily, then the remaining count is checked: at or above the bound
// the request is rejected and nothing is recorded; otherwise the current
// instant is recorded and the request admitted.
func (l *Limiter) Allow(identifier string, maxRequests int, window time.Duration) bool {
	now := l.now()
	cutoff := now.Add(-window)

	l.mu.Lock()
	defer l.mu.Unlock()

	times := l.windows[identifier]

	// Evict timestamps that have left the window.
	keep := 0
	for _, t := range times {
		if t.After(cutoff) {
			times[keep] = t
			keep++
		}
	}
	times = times[:keep]

	if len(times) >= maxRequests {
		l.windows[identifier] = times
		return false
	}

	l.windows[identifier] = append(times, now)
	return true
}

// TryAdmit is Allow expressed as an error: nil on admission, a
// *RateLimitError on rejection.
func (l *Limiter) TryAdmit(identifier string, maxRequests int, window time.Duration) error {
	if l.Allow(identifier, maxRequests, window) {
		return nil
	}
	return &RateLimitError{Identifier: identifier, MaxRequests: maxRequests, Window: window}
}

// Purge drops every identifier whose most recent admission is older than
// maxAge. Windows are otherwise evicted lazily on access, so long-idle
// identifiers would keep a map entry alive forever without this.
func (l *Limiter) Purge(maxAge time.Duration) {
	cutoff := l.now().Add(-maxAge)

	l.mu.Lock()
	defer l.mu.Unlock()

	for id, times := range l.windows {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(l.windows, id)
		}
	}
}

// Len reports how many identifiers currently hold window state.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
