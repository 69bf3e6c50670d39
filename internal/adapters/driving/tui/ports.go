// Package tui provides an interactive terminal user interface for taskmgr.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/taskmgr/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Tasks is the only way the TUI reads or changes the task list.
	Tasks driving.TaskCoordinator

	// Settings manages application settings. Optional: the settings
	// view reports an error when it is nil.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(tasks driving.TaskCoordinator, settings driving.SettingsService) *Ports {
	return &Ports{
		Tasks:    tasks,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Tasks == nil {
		return ErrMissingTaskCoordinator
	}
	return nil
}
