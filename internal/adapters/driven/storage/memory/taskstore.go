package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
)

// Ensure TaskStore implements the interface.
var _ driven.TaskStore = (*TaskStore)(nil)

// TaskStore is an in-memory implementation of driven.TaskStore.
// Tasks live only as long as the process.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

// NewTaskStore creates a new, empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make([]domain.Task, 0),
	}
}

// Add appends a task to the end of the sequence.
func (s *TaskStore) Add(_ context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	return nil
}

// Clear empties the sequence.
func (s *TaskStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = s.tasks[:0]
	return nil
}

// Remove deletes the first task equal to the given text.
func (s *TaskStore) Remove(_ context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.Index(s.tasks, task)
	if i < 0 {
		return fmt.Errorf("task %q: %w", task, domain.ErrNotFound)
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

// Sort orders the sequence lexicographically.
func (s *TaskStore) Sort(_ context.Context, order domain.SortOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch order {
	case domain.SortUnordered:
		return nil
	case domain.SortAscending:
		slices.Sort(s.tasks)
	case domain.SortDescending:
		slices.SortFunc(s.tasks, func(a, b domain.Task) int {
			return strings.Compare(b, a)
		})
	default:
		return fmt.Errorf("sort order %d: %w", int(order), domain.ErrInvalidInput)
	}
	return nil
}

// List returns a copy of the sequence.
func (s *TaskStore) List(_ context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Task, len(s.tasks))
	copy(result, s.tasks)
	return result, nil
}
