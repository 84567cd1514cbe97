package catalog

import "github.com/curio-dev/curio/internal/store"

// ListResult is the outcome of a bulk fetch: one page of the (optionally
// filtered) catalog plus pagination metadata.
type ListResult struct {
	Records []store.Record `json:"records"`
	Total   int            `json:"total"`
	HasMore bool           `json:"has_more"`
}

// SelectionResult is the outcome of a selection fetch: one resolved page of
// the selection plus the full unpaginated selection ID list, so clients can
// render ordering controls without a second round trip.
type SelectionResult struct {
	Records      []store.Record `json:"records"`
	SelectionIDs []int64        `json:"selection_ids"`
	Total        int            `json:"total"`
	HasMore      bool           `json:"has_more"`
}

// SelectResult reports which IDs a selection-add actually appended and which
// were already selected.
type SelectResult struct {
	Added           []int64 `json:"added"`
	AlreadySelected []int64 `json:"already_selected"`
}

// ReorderResult confirms the new selection order.
type ReorderResult struct {
	Order []int64 `json:"order"`
}

// UnselectResult reports removal accounting: every requested ID either removed
// an entry or counted as not found (absent, or a duplicate of an ID already
// removed by this request).
type UnselectResult struct {
	Removed  int `json:"removed"`
	NotFound int `json:"not_found"`
}
