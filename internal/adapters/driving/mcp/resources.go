package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for taskmgr resources.
	uriScheme = "tasks://"

	taskListURI = uriScheme + "list"
	settingsURI = uriScheme + "settings"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         taskListURI,
		Name:        "task-list",
		Description: "The task list in its current order",
		MIMEType:    "application/json",
	}, s.handleTaskListResource)

	s.server.AddResource(&mcp.Resource{
		URI:         settingsURI,
		Name:        "settings",
		Description: "Application settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleTaskListResource returns the task list as a JSON array.
func (s *Server) handleTaskListResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	tasks, err := s.ports.Tasks.GetTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	data, err := json.MarshalIndent(newTaskListOutput(tasks).Tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling tasks: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	info := struct {
		DefaultOrder string  `json:"default_order"`
		Title        string  `json:"title"`
		RateLimit    float64 `json:"rate_limit"`
		Burst        int     `json:"burst"`
	}{
		DefaultOrder: settings.Tasks.DefaultOrder.String(),
		Title:        settings.UI.Title,
		RateLimit:    settings.MCP.RateLimit,
		Burst:        settings.MCP.Burst,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}
