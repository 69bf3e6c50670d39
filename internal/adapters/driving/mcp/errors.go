// Package mcp provides an MCP (Model Context Protocol) server adapter for taskmgr.
// It lets AI assistants read and edit the task list through tools and resources.
package mcp

import "errors"

// ErrMissingTaskCoordinator is returned when the task coordinator is not provided.
var ErrMissingTaskCoordinator = errors.New("mcp: task coordinator is required")
