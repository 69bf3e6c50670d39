package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/views/tasks"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView     *menu.View
	tasksView    *tasks.View
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// title is shown in the menu and the terminal window title.
	title string

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// Stored settings provide the title and the initial sort order.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		menuView:     menu.NewView(s),
		tasksView:    tasks.NewView(s, km, ports.Tasks),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewMenu,
		title:        domain.DefaultTitle,
	}

	if ports.Settings != nil {
		appSettings, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("tui: loading settings: %v", err)
		} else {
			app.applySettings(appSettings)
			app.tasksView.SetOrder(appSettings.Tasks.DefaultOrder)
		}
	}

	return app, nil
}

// applySettings pushes display settings into the views.
func (a *App) applySettings(s *domain.AppSettings) {
	if s == nil || s.UI.Title == "" {
		return
	}
	a.title = s.UI.Title
	a.menuView.SetTitle(s.UI.Title)
	a.tasksView.SetTitle(s.UI.Title)
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.tasksView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// The task view is initialised up front so the default order is applied
// before the user opens it.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle(a.title),
		a.tasksView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewTasks:
			a.tasksView, cmd = a.tasksView.Update(msg)
		case messages.ViewSettings:
			a.settingsView, cmd = a.settingsView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewTasks:
			a.tasksView.Reset()
			return a, a.tasksView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	// Task messages may arrive while another view is showing.
	case messages.TasksLoaded, messages.TaskAdded, messages.TaskRemoved,
		messages.TasksCleared, messages.TasksSorted:
		a.tasksView, cmd = a.tasksView.Update(msg)
		a.err = a.tasksView.Err()
		return a, cmd

	case messages.SettingsLoaded:
		if msg.Err == nil {
			a.applySettings(msg.Settings)
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewTasks {
			a.tasksView, cmd = a.tasksView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewTasks:
		a.tasksView, cmd = a.tasksView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewTasks:
		return a.tasksView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
		return a.menuView.View()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Tasks:
  tab         Switch between new task, search and list
  enter       Add the typed task
  (type)      Filter the list while the search box has focus
  ctrl+o      Toggle order (Not Order, Asc, Dec)
  ctrl+x      Clear the list
  d, delete   Delete the selected task
  j/k, ↑/↓    Move in the list

Settings:
  o           Cycle the default order
  t           Edit the title
  s           Save

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Tasks returns the tasks currently displayed by the task view.
func (a *App) Tasks() []domain.Task {
	return a.tasksView.Tasks()
}

// Order returns the task view's order toggle state.
func (a *App) Order() domain.SortOrder {
	return a.tasksView.Order()
}

// Title returns the application title.
func (a *App) Title() string {
	return a.title
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.tasksView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
