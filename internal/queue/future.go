package queue

import (
	"context"
	"sync"
)

// Future is a broadcastable completion record: one pending result slot that is
// completed exactly once and observed by any number of waiters. All waiters on
// a pending entry share the same Future, which is what guarantees that N
// coalesced callers see the identical outcome of a single execution.
//
// A completed Future remains readable, so late joiners (and tests) can inspect
// the outcome after the fact.
type Future struct {
	mu    sync.Mutex
	done  chan struct{}
	value any
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// completedFuture returns a Future that already holds the given outcome.
// Used for duplicate-write suppression, where the caller is resolved
// immediately without joining the pending entry.
func completedFuture(value any, err error) *Future {
	f := newFuture()
	f.complete(value, err)
	return f
}

// complete stores the outcome and wakes all waiters. Only the first call has
// any effect; an entry is never resolved twice.
func (f *Future) complete(value any, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	select {
	case <-f.done:
		return // already completed
	default:
	}

	f.value = value
	f.err = err
	close(f.done)
}

// Done returns a channel that is closed once the future has completed.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future completes or the context is cancelled, and
// returns the shared outcome. Safe to call from any number of goroutines.
func (f *Future) Wait(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Outcome returns the completed value and error without blocking. The third
// return value reports whether the future has completed yet.
func (f *Future) Outcome() (any, error, bool) {
	select {
	case <-f.done:
		return f.value, f.err, true
	default:
		return nil, nil, false
	}
}
