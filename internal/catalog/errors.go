// Package catalog implements the batch executor for the curio scheduler: the
// strategy that interprets each drained batch's operations against the record
// store and produces per-operation results or errors.
//
// ERROR TAXONOMY:
//   - ValidationError: malformed or inconsistent caller input (bad ordering
//     list, empty ID list)
//   - NotFoundError: referenced IDs absent from the store or selection
//   - ConflictError: ID collision on record creation
//   - InternalError: unexpected handler fault, including recovered panics
//
// Every error is surfaced to every waiter of the failing entry; the executor
// never lets a handler fault escape and stall the batch loop.
package catalog

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed or inconsistent caller input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// NotFoundError reports referenced IDs that are absent from the store.
type NotFoundError struct {
	IDs []int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("records not found: %s", joinIDs(e.IDs))
}

// ConflictError reports an ID collision on record creation.
type ConflictError struct {
	ID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("record %d already exists", e.ID)
}

// InternalError wraps an unexpected handler fault.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Cause.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
