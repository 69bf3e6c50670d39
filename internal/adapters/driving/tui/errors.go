package tui

import "errors"

// ErrMissingTaskCoordinator is returned when the task coordinator is not provided.
var ErrMissingTaskCoordinator = errors.New("tui: task coordinator is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
