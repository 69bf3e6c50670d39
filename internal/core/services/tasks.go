package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driving"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// Ensure TaskCoordinator implements the interface.
var _ driving.TaskCoordinator = (*TaskCoordinator)(nil)

// TaskCoordinator forwards presentation requests to a single task store.
// It holds no task state of its own.
type TaskCoordinator struct {
	taskStore driven.TaskStore
}

// NewTaskCoordinator creates a coordinator over the given store.
func NewTaskCoordinator(taskStore driven.TaskStore) *TaskCoordinator {
	return &TaskCoordinator{
		taskStore: taskStore,
	}
}

// AddTask appends a task to the list.
func (c *TaskCoordinator) AddTask(ctx context.Context, text string) error {
	if c.taskStore == nil {
		return domain.ErrNotImplemented
	}
	logger.Debug("add task %q", text)
	return c.taskStore.Add(ctx, text)
}

// GetTasks returns a snapshot of the task list.
func (c *TaskCoordinator) GetTasks(ctx context.Context) ([]domain.Task, error) {
	if c.taskStore == nil {
		return nil, domain.ErrNotImplemented
	}
	logger.Debug("get tasks")
	return c.taskStore.List(ctx)
}

// ClearTaskList removes every task.
func (c *TaskCoordinator) ClearTaskList(ctx context.Context) error {
	if c.taskStore == nil {
		return domain.ErrNotImplemented
	}
	logger.Debug("clear task list")
	return c.taskStore.Clear(ctx)
}

// RemoveTask removes the first task equal to text.
func (c *TaskCoordinator) RemoveTask(ctx context.Context, text string) error {
	if c.taskStore == nil {
		return domain.ErrNotImplemented
	}
	logger.Debug("remove task %q", text)
	if err := c.taskStore.Remove(ctx, text); err != nil {
		return fmt.Errorf("remove task: %w", err)
	}
	return nil
}

// SortTasks reorders the task list.
func (c *TaskCoordinator) SortTasks(ctx context.Context, order domain.SortOrder) error {
	if c.taskStore == nil {
		return domain.ErrNotImplemented
	}
	if !order.IsValid() {
		return fmt.Errorf("sort tasks: %w", domain.ErrInvalidInput)
	}
	logger.Debug("sort tasks %s", order)
	return c.taskStore.Sort(ctx, order)
}

// SearchTasks returns the tasks containing keyword, ignoring case.
func (c *TaskCoordinator) SearchTasks(ctx context.Context, keyword string) ([]domain.Task, error) {
	logger.Debug("search tasks %q", keyword)
	tasks, err := c.GetTasks(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Filter(tasks, keyword), nil
}
