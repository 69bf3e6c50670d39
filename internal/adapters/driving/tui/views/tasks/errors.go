package tasks

import "errors"

// Error definitions for the tasks view.
var (
	// ErrNoTaskCoordinator indicates that no task coordinator was provided.
	ErrNoTaskCoordinator = errors.New("task coordinator is required")
)
