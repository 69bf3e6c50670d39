// Package tasks provides the task list view for the TUI.
package tasks

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driving"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// Focus identifies which widget receives key presses.
type Focus int

const (
	// FocusNewTask is the new-task input at the bottom.
	FocusNewTask Focus = iota
	// FocusSearch is the search input at the top.
	FocusSearch
	// FocusList is the task list.
	FocusList
)

// String returns the string representation of the focus.
func (f Focus) String() string {
	switch f {
	case FocusNewTask:
		return "new_task"
	case FocusSearch:
		return "search"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

// rows used by everything except the list
const chromeHeight = 14

// View is the task list view: a search row with the order toggle, the
// list, the new-task input and a status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	search    *input.TextInput
	newTask   *input.TextInput
	list      *list.TaskList
	statusbar *status.Bar

	coordinator driving.TaskCoordinator
	ctx         context.Context

	title string
	all   []domain.Task
	order domain.SortOrder
	focus Focus

	width  int
	height int
	ready  bool
}

// NewView creates a new tasks view.
func NewView(s *styles.Styles, km *keymap.KeyMap, coordinator driving.TaskCoordinator) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetBindings(km.TasksHelp())

	return &View{
		styles:      s,
		keymap:      km,
		search:      input.NewTextInput(s, "Search", "Search..."),
		newTask:     input.NewTextInput(s, "", "Enter a task..."),
		list:        list.NewTaskList(s),
		statusbar:   bar,
		coordinator: coordinator,
		ctx:         context.Background(),
		title:       domain.DefaultTitle,
		all:         []domain.Task{},
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init focuses the new-task input and loads the list. A non-default
// order is applied to the store first.
func (v *View) Init() tea.Cmd {
	v.setFocus(FocusNewTask)
	if v.order != domain.SortUnordered {
		return tea.Batch(v.newTask.Init(), v.sortTasks(v.order))
	}
	return tea.Batch(v.newTask.Init(), v.loadTasks())
}

// Update handles messages for the tasks view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TasksLoaded:
		if msg.Err != nil {
			v.statusbar.SetError(msg.Err)
			return v, nil
		}
		v.all = msg.Tasks
		v.applyFilter()
		return v, nil

	case messages.TaskAdded:
		return v, v.afterChange(msg.Err)

	case messages.TasksCleared:
		return v, v.afterChange(msg.Err)

	case messages.TasksSorted:
		if msg.Err == nil {
			v.applyOrder(msg.Order)
		}
		return v, v.afterChange(msg.Err)

	case messages.TaskRemoved:
		if msg.Err != nil {
			// A task that is already gone is reported and otherwise ignored.
			logger.Debug("tui: remove %q: %v", msg.Text, msg.Err)
			v.statusbar.SetError(msg.Err)
		}
		return v, v.loadTasks()

	case messages.ErrorOccurred:
		v.statusbar.SetError(msg.Err)
		return v, nil
	}

	// Cursor blink and similar messages go to the focused input.
	var cmd tea.Cmd
	switch v.focus {
	case FocusNewTask:
		v.newTask, cmd = v.newTask.Update(msg)
	case FocusSearch:
		v.search, cmd = v.search.Update(msg)
	case FocusList:
	}
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(keyStr, v.keymap.NextFocus):
		return v, v.setFocus((v.focus + 1) % 3)
	case keymap.Matches(keyStr, v.keymap.ToggleOrder):
		// The label follows once the store has applied the order.
		return v, v.sortTasks(v.order.Next())
	case keymap.Matches(keyStr, v.keymap.Clear):
		return v, v.clearTasks()
	}

	switch v.focus {
	case FocusNewTask:
		if keymap.Matches(keyStr, v.keymap.AddTask) {
			text := v.newTask.Value()
			v.newTask.Reset()
			if text == "" {
				return v, nil
			}
			return v, v.addTask(text)
		}
		var cmd tea.Cmd
		v.newTask, cmd = v.newTask.Update(msg)
		return v, cmd

	case FocusSearch:
		before := v.search.Value()
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		if v.search.Value() != before {
			v.applyFilter()
		}
		return v, cmd

	case FocusList:
		if keymap.Matches(keyStr, v.keymap.Delete) {
			task, ok := v.list.SelectedTask()
			if !ok {
				return v, nil
			}
			return v, v.removeTask(task)
		}
		v.list, _ = v.list.Update(msg)
		return v, nil
	}

	return v, nil
}

// setFocus moves focus to f and returns the focused input's command.
func (v *View) setFocus(f Focus) tea.Cmd {
	v.focus = f
	v.newTask.Blur()
	v.search.Blur()
	v.list.Blur()

	switch f {
	case FocusNewTask:
		return v.newTask.Focus()
	case FocusSearch:
		return v.search.Focus()
	case FocusList:
		v.list.Focus()
	}
	return nil
}

// applyFilter shows the tasks matching the search input.
func (v *View) applyFilter() {
	shown := domain.Filter(v.all, v.search.Value())
	v.list.SetTasks(shown)
	v.statusbar.SetCounts(len(v.all), len(shown))
}

// afterChange reloads the list after a successful change.
func (v *View) afterChange(err error) tea.Cmd {
	if err != nil {
		v.statusbar.SetError(err)
		return nil
	}
	return v.loadTasks()
}

func (v *View) loadTasks() tea.Cmd {
	return func() tea.Msg {
		if v.coordinator == nil {
			return messages.ErrorOccurred{Err: ErrNoTaskCoordinator}
		}
		tasks, err := v.coordinator.GetTasks(v.ctx)
		return messages.TasksLoaded{Tasks: tasks, Err: err}
	}
}

func (v *View) addTask(text string) tea.Cmd {
	v.statusbar.Clear()
	return func() tea.Msg {
		if v.coordinator == nil {
			return messages.ErrorOccurred{Err: ErrNoTaskCoordinator}
		}
		return messages.TaskAdded{Text: text, Err: v.coordinator.AddTask(v.ctx, text)}
	}
}

func (v *View) removeTask(text string) tea.Cmd {
	v.statusbar.Clear()
	return func() tea.Msg {
		if v.coordinator == nil {
			return messages.ErrorOccurred{Err: ErrNoTaskCoordinator}
		}
		return messages.TaskRemoved{Text: text, Err: v.coordinator.RemoveTask(v.ctx, text)}
	}
}

func (v *View) clearTasks() tea.Cmd {
	v.statusbar.Clear()
	return func() tea.Msg {
		if v.coordinator == nil {
			return messages.ErrorOccurred{Err: ErrNoTaskCoordinator}
		}
		return messages.TasksCleared{Err: v.coordinator.ClearTaskList(v.ctx)}
	}
}

func (v *View) sortTasks(order domain.SortOrder) tea.Cmd {
	v.statusbar.Clear()
	return func() tea.Msg {
		if v.coordinator == nil {
			return messages.ErrorOccurred{Err: ErrNoTaskCoordinator}
		}
		return messages.TasksSorted{Order: order, Err: v.coordinator.SortTasks(v.ctx, order)}
	}
}

// View renders the tasks view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	searchRow := lipgloss.JoinHorizontal(
		//nolint:misspell // lipgloss.Center is the correct constant from the library
		lipgloss.Center,
		v.search.View(),
		" ",
		v.styles.Button.Render(v.order.Label()),
	)

	actions := v.styles.Help.Render("[enter] Add Task  [ctrl+x] Clear List  [d] Delete Task")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		v.styles.Title.Render(v.title),
		"",
		searchRow,
		v.list.View(),
		v.newTask.View(),
		actions,
		"",
		v.statusbar.View(),
	)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	listHeight := height - chromeHeight
	if listHeight < 3 {
		listHeight = 3
	}

	v.resizeSearch()
	v.newTask.SetWidth(width)
	v.list.SetDimensions(width, listHeight)
	v.statusbar.SetWidth(width)
}

// SetOrder sets the order toggle label without touching the store.
// Init applies a non-default order.
func (v *View) SetOrder(order domain.SortOrder) {
	if !order.IsValid() {
		return
	}
	v.applyOrder(order)
}

func (v *View) applyOrder(order domain.SortOrder) {
	v.order = order
	v.statusbar.SetOrder(order)
	v.resizeSearch()
}

// resizeSearch fits the search input beside the order toggle.
func (v *View) resizeSearch() {
	if !v.ready {
		return
	}
	button := lipgloss.Width(v.styles.Button.Render(v.order.Label()))
	v.search.SetWidth(v.width - button - 1)
}

// SetTitle sets the header text. Empty titles are ignored.
func (v *View) SetTitle(title string) {
	if title != "" {
		v.title = title
	}
}

// Reset clears both inputs and focuses the new-task input.
func (v *View) Reset() {
	v.search.Reset()
	v.newTask.Reset()
	v.statusbar.Clear()
	v.setFocus(FocusNewTask)
}

// SearchWidth returns the width of the search input.
func (v *View) SearchWidth() int {
	return v.search.Width()
}

// Order returns the current order toggle state.
func (v *View) Order() domain.SortOrder {
	return v.order
}

// Focus returns the focused widget.
func (v *View) Focus() Focus {
	return v.focus
}

// Tasks returns the displayed, filtered tasks.
func (v *View) Tasks() []domain.Task {
	return v.list.Tasks()
}

// AllTasks returns the last snapshot loaded from the coordinator.
func (v *View) AllTasks() []domain.Task {
	return v.all
}

// SearchQuery returns the search input value.
func (v *View) SearchQuery() string {
	return v.search.Value()
}

// NewTaskText returns the new-task input value.
func (v *View) NewTaskText() string {
	return v.newTask.Value()
}

// SelectedIndex returns the index of the selected task in the displayed list.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Err returns the error shown in the status bar, if any.
func (v *View) Err() error {
	return v.statusbar.Err()
}

// NotFound reports whether the last error was a removal of a missing task.
func (v *View) NotFound() bool {
	return errors.Is(v.statusbar.Err(), domain.ErrNotFound)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
