package driving

import (
	"context"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

// TaskCoordinator is the only interface presentation layers may use to
// read or change the task list. It adds no state of its own.
type TaskCoordinator interface {
	// AddTask appends a task. Empty-text filtering is the caller's job.
	AddTask(ctx context.Context, text string) error

	// GetTasks returns a snapshot of the task list in its current order.
	// The returned slice is never shared with the store.
	GetTasks(ctx context.Context) ([]domain.Task, error)

	// ClearTaskList removes every task.
	ClearTaskList(ctx context.Context) error

	// RemoveTask removes the first task equal to text.
	// The error matches domain.ErrNotFound when no task has that text.
	RemoveTask(ctx context.Context, text string) error

	// SortTasks reorders the list. domain.SortUnordered is a no-op.
	SortTasks(ctx context.Context, order domain.SortOrder) error

	// SearchTasks returns the tasks containing keyword, ignoring case.
	// It never changes the stored order.
	SearchTasks(ctx context.Context, keyword string) ([]domain.Task, error)
}
