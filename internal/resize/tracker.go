// Package resize coalesces bursts of resize events into at most one pending
// recompute per frame. A newer size supersedes a pending one; nothing queues.
package resize

import (
	"context"
	"sync"
	"time"
)

// Tracker holds the newest unapplied value and applies it on the next frame.
type Tracker[T any] struct {
	mu      sync.Mutex
	pending bool
	latest  T
	dropped int
	apply   func(T)
}

// New returns a tracker that calls apply once per frame with the newest value.
func New[T any](apply func(T)) *Tracker[T] {
	return &Tracker[T]{apply: apply}
}

// Resize records v. It reports true when this call scheduled a frame and
// false when it replaced a value already waiting for one.
func (t *Tracker[T]) Resize(v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.latest = v
	if t.pending {
		t.dropped++
		return false
	}
	t.pending = true
	return true
}

// Frame applies the pending value, if any, and reports whether it did.
func (t *Tracker[T]) Frame() bool {
	t.mu.Lock()
	if !t.pending {
		t.mu.Unlock()
		return false
	}
	v := t.latest
	t.pending = false
	t.mu.Unlock()

	t.apply(v)
	return true
}

// Cancel drops the pending value without applying it.
func (t *Tracker[T]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending {
		t.dropped++
	}
	t.pending = false
}

// Pending reports whether a frame is waiting to apply a value.
func (t *Tracker[T]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Dropped counts values that were superseded or cancelled before a frame.
func (t *Tracker[T]) Dropped() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}

// Run calls Frame on every tick until ctx is done, then cancels whatever is
// still pending.
func (t *Tracker[T]) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			t.Cancel()
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				t.Cancel()
				return nil
			}
			t.Frame()
		}
	}
}

// FrameInterval approximates one display refresh at 60 Hz.
const FrameInterval = time.Second / 60
