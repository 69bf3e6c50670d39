// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

// TaskList displays tasks in a navigable list.
type TaskList struct {
	tasks    []domain.Task
	selected int
	focused  bool
	styles   *styles.Styles
	width    int
	height   int
}

// NewTaskList creates a new task list component.
func NewTaskList(s *styles.Styles) *TaskList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &TaskList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the task list.
func (l *TaskList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *TaskList) Update(msg tea.Msg) (*TaskList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible window of tasks around the selection.
func (l *TaskList) View() string {
	if len(l.tasks) == 0 {
		return l.styles.List.Width(l.width).Render(l.styles.Muted.Render("No tasks"))
	}

	visible := l.height
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.tasks) {
		end = len(l.tasks)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderTask(i))
	}

	return l.styles.List.Width(l.width).Render(strings.Join(lines, "\n"))
}

func (l *TaskList) renderTask(index int) string {
	text := l.tasks[index]

	maxLen := l.width - 6
	if maxLen < 10 {
		maxLen = 10
	}
	// Cells, not bytes: tasks are free text.
	if ansi.StringWidth(text) > maxLen {
		text = ansi.Truncate(text, maxLen, "...")
	}

	if index == l.selected && l.focused {
		return l.styles.Selected.Render("> " + text)
	}
	if index == l.selected {
		return l.styles.Subtitle.Render("> " + text)
	}
	return l.styles.Normal.Render("  " + text)
}

// SetTasks replaces the displayed tasks, keeping the selection in range.
func (l *TaskList) SetTasks(tasks []domain.Task) {
	l.tasks = tasks
	if l.selected >= len(tasks) {
		l.selected = len(tasks) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Tasks returns the displayed tasks.
func (l *TaskList) Tasks() []domain.Task {
	return l.tasks
}

// Selected returns the index of the selected task.
func (l *TaskList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *TaskList) SetSelected(index int) {
	if index >= 0 && index < len(l.tasks) {
		l.selected = index
	}
}

// SelectedTask returns the selected task and whether there is one.
func (l *TaskList) SelectedTask() (domain.Task, bool) {
	if len(l.tasks) == 0 || l.selected < 0 || l.selected >= len(l.tasks) {
		return "", false
	}
	return l.tasks[l.selected], true
}

// MoveUp moves selection up.
func (l *TaskList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *TaskList) MoveDown() {
	if l.selected < len(l.tasks)-1 {
		l.selected++
	}
}

// Focus highlights the selection.
func (l *TaskList) Focus() {
	l.focused = true
}

// Blur dims the selection.
func (l *TaskList) Blur() {
	l.focused = false
}

// Focused returns whether the list has focus.
func (l *TaskList) Focused() bool {
	return l.focused
}

// SetDimensions sets the component dimensions. Height is in rows.
func (l *TaskList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *TaskList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *TaskList) Height() int {
	return l.height
}

// Count returns the number of displayed tasks.
func (l *TaskList) Count() int {
	return len(l.tasks)
}

// IsEmpty returns whether the list is empty.
func (l *TaskList) IsEmpty() bool {
	return len(l.tasks) == 0
}
