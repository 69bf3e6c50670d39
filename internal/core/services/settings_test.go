package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/taskmgr/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("tasks.default_order", "desc")
	_ = store.Set("ui.title", "Chores")
	_ = store.Set("mcp.rate_limit", 2.5)
	_ = store.Set("mcp.burst", 4)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.SortDescending, settings.Tasks.DefaultOrder)
	assert.Equal(t, "Chores", settings.UI.Title)
	assert.InDelta(t, 2.5, settings.MCP.RateLimit, 0.0001)
	assert.Equal(t, 4, settings.MCP.Burst)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("tasks.default_order", "sideways")
	_ = store.Set("mcp.rate_limit", -3.0)
	_ = store.Set("mcp.burst", -1)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Tasks.DefaultOrder, settings.Tasks.DefaultOrder)
	assert.InDelta(t, defaults.MCP.RateLimit, settings.MCP.RateLimit, 0.0001)
	assert.Equal(t, defaults.MCP.Burst, settings.MCP.Burst)
}

func TestSettingsService_Get_WrongTypeReturnsDefaults(t *testing.T) {
	tests := []struct {
		name  string
		rate  any
		burst any
	}{
		{name: "strings", rate: "fast", burst: "lots"},
		{name: "numeric strings", rate: "10", burst: "20"},
		{name: "booleans", rate: true, burst: false},
		{name: "float burst", rate: "0", burst: 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			_ = store.Set("mcp.rate_limit", tt.rate)
			_ = store.Set("mcp.burst", tt.burst)

			settings, err := NewSettingsService(store).Get()

			require.NoError(t, err)
			defaults := domain.DefaultAppSettings()
			assert.InDelta(t, defaults.MCP.RateLimit, settings.MCP.RateLimit, 0.0001)
			assert.Equal(t, defaults.MCP.Burst, settings.MCP.Burst)
			assert.True(t, settings.MCP.RateLimited())
		})
	}
}

func TestSettingsService_Get_IntegerRateLimit(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("mcp.rate_limit", int64(4))

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.InDelta(t, 4.0, settings.MCP.RateLimit, 0.0001)
}

func TestSettingsService_Get_ZeroRateLimitDisables(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("mcp.rate_limit", 0)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.False(t, settings.MCP.RateLimited())
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := &domain.AppSettings{
		Tasks: domain.TaskSettings{DefaultOrder: domain.SortAscending},
		UI:    domain.UISettings{Title: "Errands"},
		MCP:   domain.MCPSettings{RateLimit: 5, Burst: 7},
	}

	err := service.Save(settings)

	require.NoError(t, err)
	assert.Equal(t, "asc", store.GetString("tasks.default_order"))
	assert.Equal(t, "Errands", store.GetString("ui.title"))
	assert.InDelta(t, 5.0, store.GetFloat("mcp.rate_limit"), 0.0001)
	assert.Equal(t, 7, store.GetInt("mcp.burst"))

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, *settings, *loaded)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		settings *domain.AppSettings
	}{
		{name: "nil", settings: nil},
		{
			name: "invalid order",
			settings: &domain.AppSettings{
				Tasks: domain.TaskSettings{DefaultOrder: domain.SortOrder(42)},
				MCP:   domain.MCPSettings{RateLimit: 1, Burst: 1},
			},
		},
		{
			name: "negative burst",
			settings: &domain.AppSettings{
				MCP: domain.MCPSettings{RateLimit: 1, Burst: -1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Save(tt.settings)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			_, exists := store.Get("tasks.default_order")
			assert.False(t, exists)
		})
	}
}

func TestSettingsService_SetDefaultOrder(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("ui.title", "Kept")
	service := NewSettingsService(store)

	err := service.SetDefaultOrder(domain.SortDescending)

	require.NoError(t, err)
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.SortDescending, settings.Tasks.DefaultOrder)
	assert.Equal(t, "Kept", settings.UI.Title)
}

func TestSettingsService_SetDefaultOrder_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetDefaultOrder(domain.SortOrder(-1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	defaults := service.GetDefaults()

	assert.Equal(t, domain.SortUnordered, defaults.Tasks.DefaultOrder)
	assert.Equal(t, domain.DefaultTitle, defaults.UI.Title)
}

func TestSettingsService_NilStore(t *testing.T) {
	service := NewSettingsService(nil)

	_, err := service.Get()
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	err = service.Save(&domain.AppSettings{})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	err = service.SetDefaultOrder(domain.SortAscending)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
