package mcp

import (
	"github.com/custodia-labs/taskmgr/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Tasks reads and edits the task list.
	Tasks driving.TaskCoordinator

	// Settings supplies HTTP rate limits and the settings resource.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Tasks == nil {
		return ErrMissingTaskCoordinator
	}
	// Settings is optional; defaults apply without it
	return nil
}
