package queue

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DedupKey derives the deduplication key for an operation. The function is
// pure and deterministic: it is the correctness anchor for request coalescing,
// so equal logical requests must always map to the same key.
//
// ID collections are keyed order-independently (sorted before joining), so two
// callers requesting the same multiset in different order collapse to one
// entry. Pagination parameters are part of the key: distinct windows are
// distinct requests.
func DedupKey(op Op, payload any) string {
	switch p := payload.(type) {
	case PagePayload:
		return fmt.Sprintf("%s|%s|%d|%d", op, p.Filter, p.Offset, p.Limit)
	case IDSetPayload:
		return string(op) + "|" + joinSorted(p.IDs)
	case CreatePayload:
		// Canonical JSON serialization: field order is fixed by the struct.
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Sprintf("%s|%+v", op, p)
		}
		return string(op) + "|" + string(data)
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Sprintf("%s|%+v", op, payload)
		}
		return string(op) + "|" + string(data)
	}
}

// joinSorted renders an ID list as a comma-joined string of the sorted copy.
// The input slice is never mutated.
func joinSorted(ids []int64) string {
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
