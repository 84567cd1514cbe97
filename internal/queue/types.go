// Package queue implements the request-coalescing batch scheduler that fronts
// the curio record store.
//
// COALESCING STRATEGY:
// Identical concurrent requests are deduplicated by a derived key and share a
// single execution: the first submission creates a pending entry, later
// submissions with the same key join it, and when the class timer fires every
// entry of that class is drained into one batch and executed exactly once. The
// single result is then fanned out to every caller that joined the entry.
//
// TWO-SPEED SCHEDULING:
// Read operations collect in a short window to keep latency low; write
// operations collect in a longer window to maximize coalescing. The two timers
// are independent, so a slow write batch never blocks read progress.
//
// The scheduler knows nothing about record semantics: batches are handed to a
// pluggable Executor supplied at construction time.
package queue

import (
	"time"
)

// Class partitions operations into the two scheduling speeds.
type Class int

const (
	// ClassRead operations collect in the short batch window.
	ClassRead Class = iota
	// ClassWrite operations collect in the long batch window.
	ClassWrite

	numClasses = 2
)

// String returns the class name for logging.
func (c Class) String() string {
	if c == ClassRead {
		return "read"
	}
	return "write"
}

// Op enumerates the operations the scheduler accepts.
type Op string

const (
	OpListRecords      Op = "list_records"      // bulk fetch with filter and pagination
	OpGetSelection     Op = "get_selection"     // paginated selection fetch
	OpSelectRecords    Op = "select_records"    // add IDs to the selection
	OpReorderSelection Op = "reorder_selection" // replace the selection order
	OpUnselectRecords  Op = "unselect_records"  // remove IDs from the selection
	OpCreateRecord     Op = "create_record"     // append a new record
)

// opClasses is the fixed classification table: fetching is READ, mutating is WRITE.
var opClasses = map[Op]Class{
	OpListRecords:      ClassRead,
	OpGetSelection:     ClassRead,
	OpSelectRecords:    ClassWrite,
	OpReorderSelection: ClassWrite,
	OpUnselectRecords:  ClassWrite,
	OpCreateRecord:     ClassWrite,
}

// ClassOf returns the scheduling class for an operation. The second return
// value is false for operations the scheduler does not know.
func ClassOf(op Op) (Class, bool) {
	c, ok := opClasses[op]
	return c, ok
}

// PagePayload carries the parameters for paginated fetch operations
// (list_records and get_selection; the latter ignores Filter).
type PagePayload struct {
	Offset int
	Limit  int
	Filter string
}

// IDSetPayload carries the ID list for selection mutations.
type IDSetPayload struct {
	IDs []int64
}

// CreatePayload carries the attributes for record creation. ID is optional;
// zero means "allocate the next unused ID".
type CreatePayload struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PendingEntry is one deduplicated logical request awaiting execution. At most
// one live entry exists per dedup key; all callers that submitted the same key
// share the entry's future.
type PendingEntry struct {
	Key     string
	Op      Op
	Payload any

	CreatedAt    time.Time // when the entry was created (observability only)
	LastJoinedAt time.Time // when the most recent waiter joined (observability only)

	waiters int // number of callers sharing the future
	future  *Future
}

// Waiters returns how many callers are attached to this entry.
func (e *PendingEntry) Waiters() int {
	return e.waiters
}

// Resolve completes the entry with a success value. Every waiter observes the
// same value. Has no effect if the entry was already completed.
func (e *PendingEntry) Resolve(value any) {
	e.future.complete(value, nil)
}

// Reject completes the entry with an error. Every waiter observes the same
// error. Has no effect if the entry was already completed.
func (e *PendingEntry) Reject(err error) {
	e.future.complete(nil, err)
}

// Batch is an immutable snapshot of all pending entries of one class, drained
// from the registry when the class timer fired. A batch is consumed exactly
// once by the executor and then discarded.
type Batch struct {
	Class   Class
	Entries []*PendingEntry
	FiredAt time.Time
}

// Executor is the strategy the scheduler hands drained batches to. The
// scheduler calls at most one of these at a time per class, but read and
// write batches may execute concurrently with each other.
//
// Implementations must complete every entry in the batch via Resolve or
// Reject; entries left incomplete would strand their waiters forever.
type Executor interface {
	ExecuteReadBatch(batch Batch)
	ExecuteWriteBatch(batch Batch)
}

// SuppressedResult is the sentinel value a duplicate concurrent write resolves
// with. The original entry's execution is unaffected and unaware of the
// suppressed caller; a caller that needs the write's actual outcome must
// resubmit after the pending batch completes.
type SuppressedResult struct {
	Op  Op     `json:"op"`
	Key string `json:"key"`
}

// Stats is a point-in-time snapshot of scheduler state for observability.
type Stats struct {
	PendingCount          int `json:"pending_count"`
	PendingReadCount      int `json:"pending_read_count"`
	PendingWriteCount     int `json:"pending_write_count"`
	RunningReadBatchSize  int `json:"running_read_batch_size"`
	RunningWriteBatchSize int `json:"running_write_batch_size"`
}
