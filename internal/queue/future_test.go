package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// TestFutureCompletesOnce tests that only the first completion takes effect
func TestFutureCompletesOnce(t *testing.T) {
	f := newFuture()
	f.complete("first", nil)
	f.complete("second", errors.New("late"))

	value, err, done := f.Outcome()
	if !done {
		t.Fatal("Outcome() done = false after completion")
	}
	if value != "first" || err != nil {
		t.Errorf("Outcome() = (%v, %v), want (first, nil)", value, err)
	}
}

// TestFutureBroadcast tests that every waiter observes the same outcome
func TestFutureBroadcast(t *testing.T) {
	f := newFuture()

	const waiters = 8
	results := make([]any, waiters)
	var wg sync.WaitGroup
	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func(i int) {
			defer wg.Done()
			value, err := f.Wait(context.Background())
			if err != nil {
				t.Errorf("Wait() unexpected error: %v", err)
			}
			results[i] = value
		}(i)
	}

	f.complete(42, nil)
	wg.Wait()

	for i, v := range results {
		if v != 42 {
			t.Errorf("waiter %d observed %v, want 42", i, v)
		}
	}
}

// TestFutureLateJoiner tests that a completed future stays readable
func TestFutureLateJoiner(t *testing.T) {
	f := newFuture()
	f.complete(nil, errors.New("boom"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := f.Wait(ctx); err == nil || err.Error() != "boom" {
		t.Errorf("Wait() after completion error = %v, want boom", err)
	}
}

// TestFutureWaitHonorsContext tests that cancellation unblocks waiters
func TestFutureWaitHonorsContext(t *testing.T) {
	f := newFuture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}

	// The future itself is still pending
	if _, _, done := f.Outcome(); done {
		t.Error("Outcome() done = true, want false")
	}
}

// TestCompletedFuture tests the pre-completed constructor used for
// duplicate-write suppression
func TestCompletedFuture(t *testing.T) {
	f := completedFuture(SuppressedResult{Op: OpCreateRecord, Key: "k"}, nil)

	value, err, done := f.Outcome()
	if !done || err != nil {
		t.Fatalf("Outcome() = (_, %v, %v), want (_, nil, true)", err, done)
	}
	if sr, ok := value.(SuppressedResult); !ok || sr.Key != "k" {
		t.Errorf("Outcome() value = %v, want SuppressedResult{key k}", value)
	}
}
