package driving

import "github.com/custodia-labs/taskmgr/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDefaultOrder updates the order applied when the TUI starts.
	SetDefaultOrder(order domain.SortOrder) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
