package domain

import (
	"fmt"
	"strings"
)

// Task is a single to-do item. It has no identity beyond its text:
// two tasks with the same text are indistinguishable.
type Task = string

const unknownDescription = "Unknown"

// SortOrder controls how the task list is ordered.
type SortOrder int

// Available sort orders. The zero value leaves the list untouched.
const (
	// SortUnordered keeps insertion order.
	SortUnordered SortOrder = iota

	// SortAscending orders tasks lexicographically, A to Z.
	SortAscending

	// SortDescending orders tasks lexicographically, Z to A.
	SortDescending
)

// IsValid returns true if the sort order is recognised.
func (o SortOrder) IsValid() bool {
	switch o {
	case SortUnordered, SortAscending, SortDescending:
		return true
	default:
		return false
	}
}

// String returns the short textual form used in config and flags.
func (o SortOrder) String() string {
	switch o {
	case SortUnordered:
		return "none"
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return fmt.Sprintf("SortOrder(%d)", int(o))
	}
}

// Label returns the text shown on the order toggle.
func (o SortOrder) Label() string {
	switch o {
	case SortAscending:
		return "Asc"
	case SortDescending:
		return "Dec"
	case SortUnordered:
		return "Not Order"
	default:
		return unknownDescription
	}
}

// Next returns the order that follows o when the user toggles ordering.
// Unordered moves to Ascending; from then on the toggle alternates
// between Ascending and Descending.
func (o SortOrder) Next() SortOrder {
	if o == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// ParseSortOrder converts a textual order into a SortOrder.
// Matching is case-insensitive; an empty string means unordered.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "unordered":
		return SortUnordered, nil
	case "asc", "ascending":
		return SortAscending, nil
	case "desc", "descending":
		return SortDescending, nil
	default:
		return SortUnordered, fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, s)
	}
}

// Filter returns the tasks whose text contains keyword, ignoring case.
// Order is preserved and the result never aliases tasks.
func Filter(tasks []Task, keyword string) []Task {
	needle := strings.ToLower(keyword)
	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task), needle) {
			result = append(result, task)
		}
	}
	return result
}
