package mcp

import (
	"context"

	"github.com/custodia-labs/taskmgr/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/services"
)

// mockTaskCoordinator is a mock implementation of driving.TaskCoordinator.
type mockTaskCoordinator struct {
	tasks []domain.Task
	err   error
}

func (m *mockTaskCoordinator) AddTask(_ context.Context, _ string) error {
	return m.err
}

func (m *mockTaskCoordinator) GetTasks(_ context.Context) ([]domain.Task, error) {
	return m.tasks, m.err
}

func (m *mockTaskCoordinator) ClearTaskList(_ context.Context) error {
	return m.err
}

func (m *mockTaskCoordinator) RemoveTask(_ context.Context, _ string) error {
	return m.err
}

func (m *mockTaskCoordinator) SortTasks(_ context.Context, _ domain.SortOrder) error {
	return m.err
}

func (m *mockTaskCoordinator) SearchTasks(_ context.Context, _ string) ([]domain.Task, error) {
	return m.tasks, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	return m.settings, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = settings
	return m.err
}

func (m *mockSettingsService) SetDefaultOrder(order domain.SortOrder) error {
	if m.err != nil {
		return m.err
	}
	s, _ := m.Get()
	s.Tasks.DefaultOrder = order
	m.settings = s
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// newTestServer builds a server over real services and in-memory stores.
func newTestServer() (*Server, error) {
	ports := &Ports{
		Tasks:    services.NewTaskCoordinator(memory.NewTaskStore()),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	}
	return NewServer(ports)
}
