package catalog

import (
	"fmt"
	"strings"

	"github.com/curio-dev/curio/internal/logging"
	"github.com/curio-dev/curio/internal/queue"
	"github.com/curio-dev/curio/internal/store"
)

// Executor interprets drained batches against the record store. It is the
// only component with store access: every read and write flows through the
// scheduler into one of the six handlers below.
//
// Entries are processed independently. A handler failure (or panic) rejects
// that entry's waiters and never interrupts the rest of the batch.
type Executor struct {
	store       *store.Store
	maxPageSize int
}

// NewExecutor creates an executor over the given store. maxPageSize is the
// pagination ceiling: handler page sizes are clamped to it.
func NewExecutor(st *store.Store, maxPageSize int) *Executor {
	return &Executor{store: st, maxPageSize: maxPageSize}
}

// ExecuteReadBatch processes a batch of read-class entries.
func (e *Executor) ExecuteReadBatch(batch queue.Batch) {
	e.executeBatch(batch)
}

// ExecuteWriteBatch processes a batch of write-class entries.
func (e *Executor) ExecuteWriteBatch(batch queue.Batch) {
	e.executeBatch(batch)
}

// executeBatch resolves or rejects every entry in the batch, isolating
// failures per entry.
func (e *Executor) executeBatch(batch queue.Batch) {
	for _, entry := range batch.Entries {
		value, err := e.dispatch(entry)
		if err != nil {
			logging.Warn("Executor: %s rejected (%d waiters): %v", entry.Op, entry.Waiters(), err)
			entry.Reject(err)
			continue
		}
		entry.Resolve(value)
	}
	logging.Debug("Executor: Completed %s batch with %d entries", batch.Class, len(batch.Entries))
}

// dispatch invokes the domain handler for an entry's operation. Panics are
// recovered and converted into an internal-error rejection so a faulty
// handler cannot stall the batch loop.
func (e *Executor) dispatch(entry *queue.PendingEntry) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = &InternalError{Cause: fmt.Errorf("handler panic in %s: %v", entry.Op, r)}
		}
	}()

	switch entry.Op {
	case queue.OpListRecords:
		p, ok := entry.Payload.(queue.PagePayload)
		if !ok {
			return nil, badPayload(entry)
		}
		return e.listRecords(p)
	case queue.OpGetSelection:
		p, ok := entry.Payload.(queue.PagePayload)
		if !ok {
			return nil, badPayload(entry)
		}
		return e.getSelection(p)
	case queue.OpSelectRecords:
		p, ok := entry.Payload.(queue.IDSetPayload)
		if !ok {
			return nil, badPayload(entry)
		}
		return e.selectRecords(p)
	case queue.OpReorderSelection:
		p, ok := entry.Payload.(queue.IDSetPayload)
		if !ok {
			return nil, badPayload(entry)
		}
		return e.reorderSelection(p)
	case queue.OpUnselectRecords:
		p, ok := entry.Payload.(queue.IDSetPayload)
		if !ok {
			return nil, badPayload(entry)
		}
		return e.unselectRecords(p)
	case queue.OpCreateRecord:
		p, ok := entry.Payload.(queue.CreatePayload)
		if !ok {
			return nil, badPayload(entry)
		}
		return e.createRecord(p)
	default:
		return nil, &InternalError{Cause: fmt.Errorf("no handler for operation %s", entry.Op)}
	}
}

func badPayload(entry *queue.PendingEntry) error {
	return &InternalError{Cause: fmt.Errorf("unexpected payload type %T for %s", entry.Payload, entry.Op)}
}

// listRecords filters the catalog by case-insensitive substring match across
// name, description, and category, then paginates the filtered set.
func (e *Executor) listRecords(p queue.PagePayload) (any, error) {
	records := e.store.GetAll()

	if p.Filter != "" {
		needle := strings.ToLower(p.Filter)
		filtered := records[:0]
		for _, rec := range records {
			if strings.Contains(strings.ToLower(rec.Name), needle) ||
				strings.Contains(strings.ToLower(rec.Description), needle) ||
				strings.Contains(strings.ToLower(rec.Category), needle) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	start, end, hasMore := e.page(p.Offset, p.Limit, len(records))
	return ListResult{
		Records: records[start:end],
		Total:   len(records),
		HasMore: hasMore,
	}, nil
}

// getSelection paginates the selection sequence and resolves the page to
// records. The full unpaginated ID list rides along in the result.
func (e *Executor) getSelection(p queue.PagePayload) (any, error) {
	ids := e.store.SelectionOrder()
	start, end, hasMore := e.page(p.Offset, p.Limit, len(ids))

	return SelectionResult{
		Records:      e.store.GetByIDs(ids[start:end]),
		SelectionIDs: ids,
		Total:        len(ids),
		HasMore:      hasMore,
	}, nil
}

// selectRecords appends IDs to the selection. Rejects without touching the
// selection if any ID does not exist in the store, so a partially valid
// request never partially applies.
func (e *Executor) selectRecords(p queue.IDSetPayload) (any, error) {
	if len(p.IDs) == 0 {
		return nil, &ValidationError{Reason: "empty id list"}
	}

	var missing []int64
	seen := make(map[int64]struct{}, len(p.IDs))
	for _, id := range p.IDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if !e.store.Exists(id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &NotFoundError{IDs: missing}
	}

	added, already := e.store.AddToSelection(p.IDs)
	return SelectResult{Added: added, AlreadySelected: already}, nil
}

// reorderSelection replaces the selection order. The new list must be exactly
// the current selection set: no duplicates, no missing IDs, no foreign IDs.
func (e *Executor) reorderSelection(p queue.IDSetPayload) (any, error) {
	current := e.store.SelectionOrder()
	currentSet := make(map[int64]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	newSet := make(map[int64]struct{}, len(p.IDs))
	var foreign []int64
	for _, id := range p.IDs {
		if _, dup := newSet[id]; dup {
			return nil, &ValidationError{Reason: fmt.Sprintf("duplicate id %d in new order", id)}
		}
		newSet[id] = struct{}{}
		if _, ok := currentSet[id]; !ok {
			foreign = append(foreign, id)
		}
	}
	if len(foreign) > 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("ids not in selection: %s", joinIDs(foreign))}
	}

	var missing []int64
	for _, id := range current {
		if _, ok := newSet[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("new order is missing ids: %s", joinIDs(missing))}
	}

	e.store.SetSelectionOrder(p.IDs)

	order := make([]int64, len(p.IDs))
	copy(order, p.IDs)
	return ReorderResult{Order: order}, nil
}

// unselectRecords removes IDs from the selection. Partial removal is success,
// not error: each requested ID either removes an entry (counted as removed)
// or counts as not found, including duplicates of an ID removed earlier in
// the same request.
func (e *Executor) unselectRecords(p queue.IDSetPayload) (any, error) {
	if len(p.IDs) == 0 {
		return nil, &ValidationError{Reason: "empty id list"}
	}

	selected := make(map[int64]struct{})
	for _, id := range e.store.SelectionOrder() {
		selected[id] = struct{}{}
	}

	var toRemove []int64
	result := UnselectResult{}
	for _, id := range p.IDs {
		if _, ok := selected[id]; ok {
			delete(selected, id)
			toRemove = append(toRemove, id)
			result.Removed++
			continue
		}
		result.NotFound++
	}

	if len(toRemove) > 0 {
		e.store.RemoveFromSelection(toRemove)
	}
	return result, nil
}

// createRecord appends a new record, adopting the candidate ID when given.
// Zero means allocate; anything below zero is malformed input, not a request
// for allocation.
func (e *Executor) createRecord(p queue.CreatePayload) (any, error) {
	if p.ID < 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid record id %d", p.ID)}
	}
	if p.ID > 0 && e.store.Exists(p.ID) {
		return nil, &ConflictError{ID: p.ID}
	}

	rec, err := e.store.Create(p.ID, store.Fields{
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
	})
	if err != nil {
		// Writes execute one batch at a time, so a collision here means the
		// existence check above raced with a direct store mutation.
		return nil, &ConflictError{ID: p.ID}
	}
	return rec, nil
}

// page clamps pagination parameters and returns the half-open slice bounds
// plus the has-more flag. A non-positive limit falls back to the ceiling.
func (e *Executor) page(offset, limit, total int) (start, end int, hasMore bool) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > e.maxPageSize {
		limit = e.maxPageSize
	}

	start = offset
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}
	return start, end, end < total
}
