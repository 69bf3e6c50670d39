// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driving"
)

// ErrNoSettingsService indicates that no settings service was provided.
var ErrNoSettingsService = errors.New("settings service not available")

// View is the settings configuration view. Edits go to a draft until
// they are saved.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	settingsService driving.SettingsService

	settings *domain.AppSettings
	draft    *domain.AppSettings
	err      error
	saved    bool

	editingTitle bool
	titleInput   textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	titleInput := textinput.New()
	titleInput.Placeholder = domain.DefaultTitle
	titleInput.CharLimit = 64

	return &View{
		styles:          s,
		keymap:          keymap.DefaultKeyMap(),
		settingsService: settingsService,
		titleInput:      titleInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

func (v *View) saveSettings() tea.Cmd {
	if v.draft == nil {
		return nil
	}
	draft := *v.draft
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: v.settingsService.Save(&draft)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.settings = msg.Settings
		draft := *msg.Settings
		v.draft = &draft
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.saved = true
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.editingTitle {
			return v.handleTitleKeys(msg)
		}
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	if v.draft == nil {
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.CycleOrder):
		v.draft.Tasks.DefaultOrder = cycleDefault(v.draft.Tasks.DefaultOrder)
		v.saved = false
	case keymap.Matches(keyStr, v.keymap.Save):
		return v, v.saveSettings()
	case keyStr == "t":
		v.editingTitle = true
		v.titleInput.SetValue(v.draft.UI.Title)
		return v, v.titleInput.Focus()
	}
	return v, nil
}

func (v *View) handleTitleKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // only enter and esc end editing
	switch msg.Type {
	case tea.KeyEnter:
		if title := strings.TrimSpace(v.titleInput.Value()); title != "" {
			v.draft.UI.Title = title
			v.saved = false
		}
		v.editingTitle = false
		v.titleInput.Blur()
		return v, nil
	case tea.KeyEsc:
		v.editingTitle = false
		v.titleInput.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.titleInput, cmd = v.titleInput.Update(msg)
	return v, cmd
}

// cycleDefault walks every order, unlike the task view toggle which never
// returns to unordered.
func cycleDefault(order domain.SortOrder) domain.SortOrder {
	switch order {
	case domain.SortUnordered:
		return domain.SortAscending
	case domain.SortAscending:
		return domain.SortDescending
	default:
		return domain.SortUnordered
	}
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.draft == nil {
		if v.err != nil {
			b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		} else {
			b.WriteString(v.styles.Muted.Render("Loading..."))
		}
		return b.String()
	}

	rows := [][2]string{
		{"Default order", v.draft.Tasks.DefaultOrder.Label()},
		{"Title", v.draft.UI.Title},
		{"MCP rate limit", formatRate(v.draft.MCP)},
		{"MCP burst", fmt.Sprintf("%d", v.draft.MCP.Burst)},
	}
	for _, row := range rows {
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%-16s", row[0])))
		b.WriteString(v.styles.Normal.Render(row[1]))
		b.WriteString("\n")
	}

	if v.editingTitle {
		b.WriteString("\n")
		b.WriteString(v.styles.FocusedInput.Render(v.titleInput.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case v.Dirty():
		b.WriteString(v.styles.Muted.Render("(unsaved changes)"))
	case v.saved:
		b.WriteString(v.styles.Normal.Render("Saved"))
	}
	b.WriteString("\n\n")

	b.WriteString(v.styles.Help.Render("[o] Default order  [t] Title  [s] Save  [esc] Back"))
	return b.String()
}

func formatRate(m domain.MCPSettings) string {
	if !m.RateLimited() {
		return "off"
	}
	return fmt.Sprintf("%g req/s", m.RateLimit)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset discards unsaved edits.
func (v *View) Reset() {
	v.err = nil
	v.saved = false
	v.editingTitle = false
	v.titleInput.Blur()
	if v.settings != nil {
		draft := *v.settings
		v.draft = &draft
	}
}

// Settings returns the last loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Draft returns the edited, unsaved settings.
func (v *View) Draft() *domain.AppSettings {
	return v.draft
}

// Dirty reports whether the draft differs from the loaded settings.
func (v *View) Dirty() bool {
	if v.settings == nil || v.draft == nil {
		return false
	}
	return *v.settings != *v.draft
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// EditingTitle reports whether the title input is active.
func (v *View) EditingTitle() bool {
	return v.editingTitle
}
