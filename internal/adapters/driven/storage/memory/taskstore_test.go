package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

func newStoreWith(t *testing.T, tasks ...domain.Task) *TaskStore {
	t.Helper()
	store := NewTaskStore()
	for _, task := range tasks {
		require.NoError(t, store.Add(context.Background(), task))
	}
	return store
}

func listTasks(t *testing.T, store *TaskStore) []domain.Task {
	t.Helper()
	tasks, err := store.List(context.Background())
	require.NoError(t, err)
	return tasks
}

func TestNewTaskStore(t *testing.T) {
	store := NewTaskStore()
	require.NotNil(t, store)

	tasks := listTasks(t, store)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskStore_Add_PreservesCallOrder(t *testing.T) {
	store := newStoreWith(t, "buy milk", "call mom", "archive emails")

	assert.Equal(t, []domain.Task{"buy milk", "call mom", "archive emails"}, listTasks(t, store))
}

func TestTaskStore_Add_AllowsDuplicatesAndEmpty(t *testing.T) {
	store := newStoreWith(t, "a", "a", "")

	assert.Equal(t, []domain.Task{"a", "a", ""}, listTasks(t, store))
}

func TestTaskStore_Clear(t *testing.T) {
	tests := []struct {
		name  string
		tasks []domain.Task
	}{
		{"empty store", nil},
		{"single task", []domain.Task{"a"}},
		{"many tasks", []domain.Task{"a", "b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStoreWith(t, tt.tasks...)

			require.NoError(t, store.Clear(context.Background()))
			assert.Empty(t, listTasks(t, store))

			// Idempotent
			require.NoError(t, store.Clear(context.Background()))
			assert.Empty(t, listTasks(t, store))
		})
	}
}

func TestTaskStore_Clear_ThenAdd(t *testing.T) {
	store := newStoreWith(t, "a", "b")
	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, store.Add(context.Background(), "c"))

	assert.Equal(t, []domain.Task{"c"}, listTasks(t, store))
}

func TestTaskStore_Remove_FirstOccurrence(t *testing.T) {
	store := newStoreWith(t, "a", "b", "a", "c")

	err := store.Remove(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, []domain.Task{"b", "a", "c"}, listTasks(t, store))
}

func TestTaskStore_Remove_DecreasesLengthByOne(t *testing.T) {
	original := []domain.Task{"x", "y", "z", "y"}
	for i, target := range original {
		t.Run(fmt.Sprintf("%d_%s", i, target), func(t *testing.T) {
			store := newStoreWith(t, original...)

			require.NoError(t, store.Remove(context.Background(), target))

			first := slices.Index(original, target)
			expected := slices.Delete(slices.Clone(original), first, first+1)
			assert.Equal(t, expected, listTasks(t, store))
		})
	}
}

func TestTaskStore_Remove_NotFound(t *testing.T) {
	store := newStoreWith(t, "a", "b")

	err := store.Remove(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "missing")
	assert.Equal(t, []domain.Task{"a", "b"}, listTasks(t, store))
}

func TestTaskStore_Remove_EmptyStore(t *testing.T) {
	store := NewTaskStore()

	err := store.Remove(context.Background(), "a")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, listTasks(t, store))
}

func TestTaskStore_Sort(t *testing.T) {
	tests := []struct {
		name     string
		order    domain.SortOrder
		expected []domain.Task
	}{
		{"unordered is a no-op", domain.SortUnordered, []domain.Task{"call mom", "Zebra", "archive emails", "buy milk"}},
		{"ascending", domain.SortAscending, []domain.Task{"Zebra", "archive emails", "buy milk", "call mom"}},
		{"descending", domain.SortDescending, []domain.Task{"call mom", "buy milk", "archive emails", "Zebra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStoreWith(t, "call mom", "Zebra", "archive emails", "buy milk")

			require.NoError(t, store.Sort(context.Background(), tt.order))
			assert.Equal(t, tt.expected, listTasks(t, store))
		})
	}
}

func TestTaskStore_Sort_AscendingThenDescendingIsReverse(t *testing.T) {
	store := newStoreWith(t, "delta", "alpha", "charlie", "bravo", "echo")
	ctx := context.Background()

	require.NoError(t, store.Sort(ctx, domain.SortAscending))
	ascending := listTasks(t, store)

	require.NoError(t, store.Sort(ctx, domain.SortDescending))
	descending := listTasks(t, store)

	reversed := slices.Clone(ascending)
	slices.Reverse(reversed)
	assert.Equal(t, reversed, descending)
}

func TestTaskStore_Sort_InvalidOrder(t *testing.T) {
	store := newStoreWith(t, "b", "a")

	err := store.Sort(context.Background(), domain.SortOrder(99))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, []domain.Task{"b", "a"}, listTasks(t, store))
}

func TestTaskStore_Scenario(t *testing.T) {
	ctx := context.Background()
	store := newStoreWith(t, "buy milk", "call mom", "archive emails")
	assert.Equal(t, []domain.Task{"buy milk", "call mom", "archive emails"}, listTasks(t, store))

	require.NoError(t, store.Sort(ctx, domain.SortAscending))
	assert.Equal(t, []domain.Task{"archive emails", "buy milk", "call mom"}, listTasks(t, store))

	require.NoError(t, store.Remove(ctx, "buy milk"))
	assert.Equal(t, []domain.Task{"archive emails", "call mom"}, listTasks(t, store))

	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, []domain.Task{}, listTasks(t, store))
}

func TestTaskStore_DataIsolation(t *testing.T) {
	store := newStoreWith(t, "original")

	tasks := listTasks(t, store)
	tasks[0] = "modified"
	_ = append(tasks, "appended")

	assert.Equal(t, []domain.Task{"original"}, listTasks(t, store))
}

func TestTaskStore_DataIsolation_AfterClear(t *testing.T) {
	store := newStoreWith(t, "a", "b")
	snapshot := listTasks(t, store)

	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, store.Add(context.Background(), "c"))

	// Earlier snapshots are unaffected by later mutations.
	assert.Equal(t, []domain.Task{"a", "b"}, snapshot)
}

func TestTaskStore_ContextCancellation(t *testing.T) {
	store := NewTaskStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Memory store doesn't use context for cancellation
	assert.NoError(t, store.Add(ctx, "a"))
	assert.NoError(t, store.Sort(ctx, domain.SortAscending))
	_, err := store.List(ctx)
	assert.NoError(t, err)
	assert.NoError(t, store.Remove(ctx, "a"))
	assert.NoError(t, store.Clear(ctx))
}

func TestTaskStore_Concurrency_AddAndList(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	numGoroutines := 50

	wg.Add(numGoroutines * 2)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			_ = store.Add(ctx, fmt.Sprintf("task-%d", id))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	assert.Len(t, listTasks(t, store), numGoroutines)
}

func TestTaskStore_Concurrency_MixedOperations(t *testing.T) {
	store := newStoreWith(t, "a", "b", "c")
	ctx := context.Background()

	var wg sync.WaitGroup
	numOperations := 100

	wg.Add(numOperations)
	for i := 0; i < numOperations; i++ {
		go func(id int) {
			defer wg.Done()
			switch id % 5 {
			case 0:
				_ = store.Add(ctx, fmt.Sprintf("task-%d", id))
			case 1:
				_ = store.Remove(ctx, "a")
			case 2:
				_ = store.Sort(ctx, domain.SortDescending)
			case 3:
				_, _ = store.List(ctx)
			case 4:
				_ = store.Sort(ctx, domain.SortAscending)
			}
		}(i)
	}
	wg.Wait()

	// Should not panic or deadlock
	_, _ = store.List(ctx)
}
