package services

import (
	"fmt"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultOrder = "tasks.default_order"
	keyUITitle      = "ui.title"
	keyMCPRateLimit = "mcp.rate_limit"
	keyMCPBurst     = "mcp.burst"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}

	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Tasks: domain.TaskSettings{
			DefaultOrder: s.getSortOrder(defaults.Tasks.DefaultOrder),
		},
		UI: domain.UISettings{
			Title: s.getString(keyUITitle, defaults.UI.Title),
		},
		MCP: domain.MCPSettings{
			RateLimit: s.getFloat(keyMCPRateLimit, defaults.MCP.RateLimit),
			Burst:     s.getInt(keyMCPBurst, defaults.MCP.Burst),
		},
	}

	if settings.MCP.RateLimit < 0 {
		settings.MCP.RateLimit = defaults.MCP.RateLimit
	}
	if settings.MCP.Burst <= 0 {
		settings.MCP.Burst = defaults.MCP.Burst
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	if err := s.configStore.Set(keyDefaultOrder, settings.Tasks.DefaultOrder.String()); err != nil {
		return fmt.Errorf("save default order: %w", err)
	}
	if err := s.configStore.Set(keyUITitle, settings.UI.Title); err != nil {
		return fmt.Errorf("save ui title: %w", err)
	}
	if err := s.configStore.Set(keyMCPRateLimit, settings.MCP.RateLimit); err != nil {
		return fmt.Errorf("save mcp rate_limit: %w", err)
	}
	if err := s.configStore.Set(keyMCPBurst, settings.MCP.Burst); err != nil {
		return fmt.Errorf("save mcp burst: %w", err)
	}

	return nil
}

// SetDefaultOrder updates the order applied when the TUI starts.
func (s *SettingsService) SetDefaultOrder(order domain.SortOrder) error {
	if !order.IsValid() {
		return fmt.Errorf("invalid sort order %s: %w", order, domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Tasks.DefaultOrder = order
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if !s.isNumeric(key, false) {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

// getFloat keeps an explicit zero, which disables rate limiting.
func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if !s.isNumeric(key, true) {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

// isNumeric reports whether key holds a number the typed getters can read.
// A value of the wrong type would otherwise read as zero.
func (s *SettingsService) isNumeric(key string, allowFloat bool) bool {
	val, exists := s.configStore.Get(key)
	if !exists {
		return false
	}
	switch val.(type) {
	case int, int64:
		return true
	case float64:
		return allowFloat
	default:
		return false
	}
}

func (s *SettingsService) getSortOrder(defaultVal domain.SortOrder) domain.SortOrder {
	val := s.configStore.GetString(keyDefaultOrder)
	if val == "" {
		return defaultVal
	}
	order, err := domain.ParseSortOrder(val)
	if err != nil {
		return defaultVal
	}
	return order
}
