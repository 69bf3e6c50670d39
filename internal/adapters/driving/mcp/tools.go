package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

// NoInput is the input schema for tools without arguments.
type NoInput struct{}

// TaskTextInput is the input schema for tools that take a task.
type TaskTextInput struct {
	Text string `json:"text" jsonschema:"the task text, matched exactly"`
}

// SortInput is the input schema for the sort_tasks tool.
type SortInput struct {
	Order string `json:"order" jsonschema:"sort order: none, asc or desc"`
}

// SearchInput is the input schema for the search_tasks tool.
type SearchInput struct {
	Keyword string `json:"keyword" jsonschema:"case-insensitive substring to look for; empty matches every task"`
}

// TaskListOutput is the output schema shared by all task tools.
type TaskListOutput struct {
	Tasks []string `json:"tasks"`
	Count int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_task",
		Description: "Append a task to the end of the task list",
	}, s.handleAddTask)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_tasks",
		Description: "Return the task list in its current order",
	}, s.handleGetTasks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_tasks",
		Description: "Remove every task",
	}, s.handleClearTasks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_task",
		Description: "Remove the first task whose text equals the given text",
	}, s.handleRemoveTask)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sort_tasks",
		Description: "Sort the task list: none leaves it unchanged, asc and desc sort lexicographically",
	}, s.handleSortTasks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_tasks",
		Description: "Find tasks containing a keyword without changing the list",
	}, s.handleSearchTasks)
}

// handleAddTask handles the add_task tool invocation.
func (s *Server) handleAddTask(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TaskTextInput,
) (*mcp.CallToolResult, TaskListOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, TaskListOutput{}, fmt.Errorf("add_task: text is empty: %w", domain.ErrInvalidInput)
	}
	if err := s.ports.Tasks.AddTask(ctx, input.Text); err != nil {
		return nil, TaskListOutput{}, err
	}
	return s.taskList(ctx)
}

// handleGetTasks handles the get_tasks tool invocation.
func (s *Server) handleGetTasks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ NoInput,
) (*mcp.CallToolResult, TaskListOutput, error) {
	return s.taskList(ctx)
}

// handleClearTasks handles the clear_tasks tool invocation.
func (s *Server) handleClearTasks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ NoInput,
) (*mcp.CallToolResult, TaskListOutput, error) {
	if err := s.ports.Tasks.ClearTaskList(ctx); err != nil {
		return nil, TaskListOutput{}, err
	}
	return s.taskList(ctx)
}

// handleRemoveTask handles the remove_task tool invocation.
func (s *Server) handleRemoveTask(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TaskTextInput,
) (*mcp.CallToolResult, TaskListOutput, error) {
	if err := s.ports.Tasks.RemoveTask(ctx, input.Text); err != nil {
		return nil, TaskListOutput{}, err
	}
	return s.taskList(ctx)
}

// handleSortTasks handles the sort_tasks tool invocation.
func (s *Server) handleSortTasks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SortInput,
) (*mcp.CallToolResult, TaskListOutput, error) {
	order, err := domain.ParseSortOrder(input.Order)
	if err != nil {
		return nil, TaskListOutput{}, fmt.Errorf("sort_tasks: %w", err)
	}
	if err := s.ports.Tasks.SortTasks(ctx, order); err != nil {
		return nil, TaskListOutput{}, err
	}
	return s.taskList(ctx)
}

// handleSearchTasks handles the search_tasks tool invocation.
func (s *Server) handleSearchTasks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, TaskListOutput, error) {
	tasks, err := s.ports.Tasks.SearchTasks(ctx, input.Keyword)
	if err != nil {
		return nil, TaskListOutput{}, err
	}
	return nil, newTaskListOutput(tasks), nil
}

// taskList returns the whole list as a tool result.
func (s *Server) taskList(ctx context.Context) (*mcp.CallToolResult, TaskListOutput, error) {
	tasks, err := s.ports.Tasks.GetTasks(ctx)
	if err != nil {
		return nil, TaskListOutput{}, err
	}
	return nil, newTaskListOutput(tasks), nil
}

func newTaskListOutput(tasks []domain.Task) TaskListOutput {
	out := TaskListOutput{
		Tasks: make([]string, len(tasks)),
		Count: len(tasks),
	}
	copy(out.Tasks, tasks)
	return out
}
