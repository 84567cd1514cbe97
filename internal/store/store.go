// Package store implements the in-memory record catalog backing the curio
// service: a key-addressable collection of records plus an ordered "selection"
// sequence maintained by the user.
//
// Records live in a B-tree keyed by numeric ID so that full scans iterate in a
// stable ascending order, which keeps pagination deterministic across requests.
// The selection is an ordered ID sequence with O(1) membership checks.
//
// The store only provides primitives (lookup, append, selection mutation).
// Cross-record invariants such as "selection entries reference only existing
// records" are enforced by the batch executor, which is the sole component
// allowed to touch the store.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/tidwall/btree"
)

// Record represents a single catalog entry.
type Record struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// Fields carries the caller-supplied attributes for record creation.
type Fields struct {
	Name        string
	Description string
	Category    string
}

// Store holds all records and the current selection. Safe for concurrent use:
// read and write batches may execute in parallel on different goroutines.
type Store struct {
	mu      sync.RWMutex
	records btree.Map[int64, Record]

	selection    []int64             // current selection, in user-defined order
	selectionSet map[int64]struct{}  // membership index for the selection
	nextID       int64               // next ID to allocate (max seen + 1)
}

// New creates an empty store.
func New() *Store {
	return &Store{
		selectionSet: make(map[int64]struct{}),
		nextID:       1,
	}
}

// Exists reports whether a record with the given ID is present.
func (s *Store) Exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records.Get(id)
	return ok
}

// GetByID returns the record with the given ID, if present.
func (s *Store) GetByID(id int64) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.Get(id)
}

// GetByIDs resolves the given IDs to records, preserving request order and
// silently skipping IDs that are not present.
func (s *Store) GetByIDs(ids []int64) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]Record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := s.records.Get(id); ok {
			records = append(records, rec)
		}
	}
	return records
}

// GetAll returns every record in ascending ID order. The stable ordering is
// what makes offset/limit pagination deterministic.
func (s *Store) GetAll() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]Record, 0, s.records.Len())
	s.records.Scan(func(_ int64, rec Record) bool {
		records = append(records, rec)
		return true
	})
	return records
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.Len()
}

// SelectionOrder returns a copy of the current selection ID sequence in order.
func (s *Store) SelectionOrder() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := make([]int64, len(s.selection))
	copy(order, s.selection)
	return order
}

// AddToSelection appends the given IDs to the selection, skipping IDs that are
// already selected. Returns the newly added and already-present subsets.
// Existence of the IDs in the record set is the caller's responsibility.
func (s *Store) AddToSelection(ids []int64) (added, alreadyPresent []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if _, ok := s.selectionSet[id]; ok {
			alreadyPresent = append(alreadyPresent, id)
			continue
		}
		s.selectionSet[id] = struct{}{}
		s.selection = append(s.selection, id)
		added = append(added, id)
	}
	return added, alreadyPresent
}

// SetSelectionOrder replaces the selection sequence with the given order.
// The caller must have verified that the new order is a permutation of the
// current selection.
func (s *Store) SetSelectionOrder(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = make([]int64, len(ids))
	copy(s.selection, ids)

	s.selectionSet = make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		s.selectionSet[id] = struct{}{}
	}
}

// RemoveFromSelection removes the given IDs from the selection, preserving the
// relative order of the remaining entries. Returns how many entries were
// actually removed; IDs not currently selected are ignored.
func (s *Store) RemoveFromSelection(ids []int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	removed := 0
	kept := s.selection[:0]
	for _, id := range s.selection {
		if _, ok := drop[id]; ok {
			delete(s.selectionSet, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.selection = kept
	return removed
}

// Create stores a new record. When candidateID is positive the record adopts
// that ID; otherwise the next unused ID is allocated. Returns an error if the
// candidate ID is already taken.
func (s *Store) Create(candidateID int64, fields Fields) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := candidateID
	if id <= 0 {
		id = s.nextID
	} else if _, ok := s.records.Get(id); ok {
		return Record{}, fmt.Errorf("record %d already exists", id)
	}

	rec := Record{
		ID:          id,
		Name:        fields.Name,
		Description: fields.Description,
		Category:    fields.Category,
		CreatedAt:   time.Now(),
	}
	s.records.Set(id, rec)

	if id >= s.nextID {
		s.nextID = id + 1
	}
	return rec, nil
}
