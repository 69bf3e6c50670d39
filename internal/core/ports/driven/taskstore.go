package driven

import (
	"context"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

// TaskStore owns the ordered sequence of tasks.
// Insertion order is the default order. Duplicates are allowed.
type TaskStore interface {
	// Add appends a task to the end of the sequence.
	Add(ctx context.Context, task domain.Task) error

	// Clear empties the sequence. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	// Remove deletes the first task equal to the given text.
	// Returns domain.ErrNotFound if no task matches.
	Remove(ctx context.Context, task domain.Task) error

	// Sort orders the sequence lexicographically.
	// domain.SortUnordered leaves the sequence unchanged.
	Sort(ctx context.Context, order domain.SortOrder) error

	// List returns a snapshot of the sequence.
	// Callers may modify the returned slice freely.
	List(ctx context.Context) ([]domain.Task, error)
}
