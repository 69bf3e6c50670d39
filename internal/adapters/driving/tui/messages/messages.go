// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewTasks is the task list view.
	ViewTasks
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewTasks:
		return "tasks"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// TasksLoaded carries a fresh snapshot of the task list.
type TasksLoaded struct {
	Tasks []domain.Task
	Err   error
}

// TaskAdded signals a task was appended.
type TaskAdded struct {
	Text string
	Err  error
}

// TaskRemoved signals a removal attempt finished.
// Err wraps domain.ErrNotFound when the task was already gone.
type TaskRemoved struct {
	Text string
	Err  error
}

// TasksCleared signals the list was emptied.
type TasksCleared struct {
	Err error
}

// TasksSorted signals the list was reordered.
type TasksSorted struct {
	Order domain.SortOrder
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
