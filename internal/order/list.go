package order

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/ibeloyar/printbee/internal/model"
)

// StatusAll disables the status filter.
const StatusAll = "All"

// Filter keeps orders whose name, email or phone contains search
// (case-insensitive) and whose status equals status, unless status is All.
// The input order is preserved.
func Filter(orders []model.Order, search, status string) []model.Order {
	needle := strings.ToLower(strings.TrimSpace(search))
	if status == "" {
		status = StatusAll
	}

	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if !matchesSearch(o, needle) {
			continue
		}
		if status != StatusAll && string(o.JobStatus) != status {
			continue
		}
		result = append(result, o)
	}

	return result
}

func matchesSearch(o model.Order, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.Name), needle) ||
		strings.Contains(strings.ToLower(o.Email), needle) ||
		strings.Contains(strings.ToLower(o.Phone), needle)
}

// NewestFirst returns a copy of orders with the most recent first. The store
// appends rows, so the list is reversed; when every timestamp parses the rows
// are then stably ordered by time, so the store's native order stops
// mattering.
func NewestFirst(orders []model.Order) []model.Order {
	result := slices.Clone(orders)
	slices.Reverse(result)

	times := make([]time.Time, len(result))
	for i, o := range result {
		t, ok := ParseTimestamp(o.Timestamp)
		if !ok {
			return result
		}
		times[i] = t
	}

	idx := make([]int, len(result))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return times[idx[a]].After(times[idx[b]])
	})

	sorted := make([]model.Order, len(result))
	for i, j := range idx {
		sorted[i] = result[j]
	}
	return sorted
}

// Prepend puts created at the top of orders unless an order with the same id
// is already listed.
func Prepend(orders []model.Order, created model.Order) []model.Order {
	for _, o := range orders {
		if created.OrderID != "" && o.OrderID == created.OrderID {
			return orders
		}
	}

	return append([]model.Order{created}, orders...)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
