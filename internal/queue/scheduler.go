package queue

import (
	"fmt"
	"sync"
	"time"

	"github.com/curio-dev/curio/internal/logging"
)

// Scheduler coalesces identical concurrent requests and releases them to the
// executor in timed batches, one timer per operation class.
//
// INVARIANTS:
//   - At most one live PendingEntry exists per dedup key at any instant.
//   - Each class has at most one armed timer at a time.
//   - A drained batch is executed exactly once and never re-executed.
//
// The registry is owned exclusively by the scheduler: it is mutated only by
// Submit (insert/join) and by the drain step when a timer fires, and both run
// under the same mutex so no submission can observe a half-drained registry.
type Scheduler struct {
	mu      sync.Mutex
	cfg     *Config
	exec    Executor
	timers  TimerFactory
	pending map[string]*PendingEntry

	armed   [numClasses]bool // whether a batch timer is currently armed, per class
	running [numClasses]int  // entry count of the batch currently executing, per class
}

// NewScheduler creates a scheduler with the given configuration, executor
// strategy, and timer source. The config must already be validated.
func NewScheduler(cfg *Config, exec Executor, timers TimerFactory) *Scheduler {
	return &Scheduler{
		cfg:     cfg,
		exec:    exec,
		timers:  timers,
		pending: make(map[string]*PendingEntry),
	}
}

// Submit is the scheduler's only entry point. It classifies the operation,
// computes its dedup key, and either joins an existing pending entry or
// creates a new one, arming the class timer if needed. The returned future
// resolves when the entry's batch has executed.
//
// READ submissions with an in-flight key join the existing entry and share
// its result. WRITE submissions with an in-flight key do not join: the new
// caller is resolved immediately with a SuppressedResult and the original
// entry executes unaware of it.
func (s *Scheduler) Submit(op Op, payload any) (*Future, error) {
	class, ok := ClassOf(op)
	if !ok {
		return nil, fmt.Errorf("unknown operation: %s", op)
	}
	key := DedupKey(op, payload)
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, exists := s.pending[key]; exists {
		if class == ClassWrite {
			// Duplicate write: suppress rather than join. The pending entry's
			// payload wins; this caller's payload is dropped.
			logging.Debug("Queue: Suppressed duplicate write %s (key %s, %d waiters on original)",
				op, key, entry.waiters)
			return completedFuture(SuppressedResult{Op: op, Key: key}, nil), nil
		}

		entry.waiters++
		entry.LastJoinedAt = now
		logging.Debug("Queue: Joined pending %s (key %s, %d waiters)", op, key, entry.waiters)
		return entry.future, nil
	}

	entry := &PendingEntry{
		Key:          key,
		Op:           op,
		Payload:      payload,
		CreatedAt:    now,
		LastJoinedAt: now,
		waiters:      1,
		future:       newFuture(),
	}
	s.pending[key] = entry
	s.armLocked(class)

	return entry.future, nil
}

// Stats returns a snapshot of pending and running batch sizes.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		PendingCount:          len(s.pending),
		RunningReadBatchSize:  s.running[ClassRead],
		RunningWriteBatchSize: s.running[ClassWrite],
	}
	for _, entry := range s.pending {
		if class, _ := ClassOf(entry.Op); class == ClassRead {
			st.PendingReadCount++
		} else {
			st.PendingWriteCount++
		}
	}
	return st
}

// armLocked arms the batch timer for a class if none is pending. Arming is a
// no-op while a timer for the class is already armed. Caller must hold s.mu.
func (s *Scheduler) armLocked(class Class) {
	if s.armed[class] {
		return
	}
	s.armed[class] = true
	s.timers.AfterFunc(s.cfg.window(class), func() { s.fire(class) })
}

// fire drains all pending entries of a class into a batch and hands it to the
// executor. The drain-and-disarm step is atomic with respect to Submit, so a
// submission lands either in this batch or in the registry for the next one,
// never in limbo.
//
// After the executor returns, the timer is re-armed if new entries of the
// class arrived during execution (and Submit has not armed it already). Under
// sustained load this yields back-to-back batches with at most one window of
// latency gap; under light load the class goes idle.
func (s *Scheduler) fire(class Class) {
	s.mu.Lock()
	batch := Batch{Class: class, FiredAt: time.Now()}
	for key, entry := range s.pending {
		if c, _ := ClassOf(entry.Op); c == class {
			batch.Entries = append(batch.Entries, entry)
			delete(s.pending, key)
		}
	}
	s.armed[class] = false
	s.running[class] = len(batch.Entries)
	s.mu.Unlock()

	if len(batch.Entries) > 0 {
		logging.Debug("Queue: Executing %s batch with %d entries", class, len(batch.Entries))
		if class == ClassRead {
			s.exec.ExecuteReadBatch(batch)
		} else {
			s.exec.ExecuteWriteBatch(batch)
		}
	}

	s.mu.Lock()
	s.running[class] = 0
	if s.hasPendingLocked(class) {
		s.armLocked(class)
	}
	s.mu.Unlock()
}

// hasPendingLocked reports whether any registry entry belongs to the class.
// Caller must hold s.mu.
func (s *Scheduler) hasPendingLocked(class Class) bool {
	for _, entry := range s.pending {
		if c, _ := ClassOf(entry.Op); c == class {
			return true
		}
	}
	return false
}
