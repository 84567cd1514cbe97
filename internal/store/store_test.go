package store

import (
	"reflect"
	"testing"
)

// seedRecords creates n records with sequential IDs and returns the store
func seedRecords(t *testing.T, n int) *Store {
	t.Helper()
	s := New()
	for i := 0; i < n; i++ {
		if _, err := s.Create(0, Fields{Name: "record", Category: "general"}); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}
	return s
}

// TestCreateAllocatesSequentialIDs tests automatic ID allocation
func TestCreateAllocatesSequentialIDs(t *testing.T) {
	s := New()

	first, err := s.Create(0, Fields{Name: "a"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	second, err := s.Create(0, Fields{Name: "b"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("Create() allocated IDs %d, %d, want 1, 2", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Error("Create() did not stamp CreatedAt")
	}
}

// TestCreateAdoptsCandidateID tests explicit ID adoption and allocation continuity
func TestCreateAdoptsCandidateID(t *testing.T) {
	s := New()

	rec, err := s.Create(10, Fields{Name: "explicit"})
	if err != nil {
		t.Fatalf("Create(10) unexpected error: %v", err)
	}
	if rec.ID != 10 {
		t.Errorf("Create(10) ID = %d, want 10", rec.ID)
	}

	// Allocation must continue past the adopted ID
	next, err := s.Create(0, Fields{Name: "auto"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if next.ID != 11 {
		t.Errorf("Create() after adoption ID = %d, want 11", next.ID)
	}
}

// TestCreateRejectsCollision tests duplicate ID rejection
func TestCreateRejectsCollision(t *testing.T) {
	s := seedRecords(t, 3)

	if _, err := s.Create(2, Fields{Name: "dup"}); err == nil {
		t.Error("Create(2) expected collision error, got nil")
	}
	if s.Len() != 3 {
		t.Errorf("store length = %d after rejected create, want 3", s.Len())
	}
}

// TestGetAllStableOrder tests that scans iterate in ascending ID order
// regardless of insertion order
func TestGetAllStableOrder(t *testing.T) {
	s := New()
	for _, id := range []int64{5, 1, 3} {
		if _, err := s.Create(id, Fields{Name: "r"}); err != nil {
			t.Fatalf("Create(%d) unexpected error: %v", id, err)
		}
	}

	var ids []int64
	for _, rec := range s.GetAll() {
		ids = append(ids, rec.ID)
	}
	if !reflect.DeepEqual(ids, []int64{1, 3, 5}) {
		t.Errorf("GetAll() order = %v, want [1 3 5]", ids)
	}
}

// TestGetByIDsSkipsAbsent tests bulk lookup semantics
func TestGetByIDsSkipsAbsent(t *testing.T) {
	s := seedRecords(t, 3)

	records := s.GetByIDs([]int64{3, 99, 1})
	if len(records) != 2 {
		t.Fatalf("GetByIDs() returned %d records, want 2", len(records))
	}
	// Request order is preserved
	if records[0].ID != 3 || records[1].ID != 1 {
		t.Errorf("GetByIDs() order = [%d %d], want [3 1]", records[0].ID, records[1].ID)
	}
}

// TestAddToSelection tests dedup accounting on selection append
func TestAddToSelection(t *testing.T) {
	s := seedRecords(t, 3)

	added, already := s.AddToSelection([]int64{1, 2})
	if !reflect.DeepEqual(added, []int64{1, 2}) || already != nil {
		t.Errorf("AddToSelection() = (%v, %v), want ([1 2], [])", added, already)
	}

	added, already = s.AddToSelection([]int64{2, 3})
	if !reflect.DeepEqual(added, []int64{3}) || !reflect.DeepEqual(already, []int64{2}) {
		t.Errorf("AddToSelection() = (%v, %v), want ([3], [2])", added, already)
	}

	if order := s.SelectionOrder(); !reflect.DeepEqual(order, []int64{1, 2, 3}) {
		t.Errorf("SelectionOrder() = %v, want [1 2 3]", order)
	}
}

// TestSetSelectionOrder tests reordering
func TestSetSelectionOrder(t *testing.T) {
	s := seedRecords(t, 3)
	s.AddToSelection([]int64{1, 2, 3})

	s.SetSelectionOrder([]int64{3, 1, 2})
	if order := s.SelectionOrder(); !reflect.DeepEqual(order, []int64{3, 1, 2}) {
		t.Errorf("SelectionOrder() = %v, want [3 1 2]", order)
	}
}

// TestRemoveFromSelection tests removal accounting and order preservation
func TestRemoveFromSelection(t *testing.T) {
	s := seedRecords(t, 4)
	s.AddToSelection([]int64{1, 2, 3, 4})

	removed := s.RemoveFromSelection([]int64{2, 4, 99})
	if removed != 2 {
		t.Errorf("RemoveFromSelection() removed = %d, want 2", removed)
	}
	if order := s.SelectionOrder(); !reflect.DeepEqual(order, []int64{1, 3}) {
		t.Errorf("SelectionOrder() after removal = %v, want [1 3]", order)
	}

	// Removing again finds nothing
	if removed := s.RemoveFromSelection([]int64{2}); removed != 0 {
		t.Errorf("RemoveFromSelection() removed = %d, want 0", removed)
	}
}

// TestSelectionOrderReturnsCopy tests that callers cannot mutate internal state
func TestSelectionOrderReturnsCopy(t *testing.T) {
	s := seedRecords(t, 2)
	s.AddToSelection([]int64{1, 2})

	order := s.SelectionOrder()
	order[0] = 42

	if fresh := s.SelectionOrder(); fresh[0] != 1 {
		t.Errorf("SelectionOrder() internal state mutated via returned slice: %v", fresh)
	}
}
