// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/styles"
)

const (
	charLimit    = 256
	minWidth     = 20
	defaultWidth = 50
)

// TextInput wraps a bubbles textinput with an optional label and a border
// that changes colour with focus.
type TextInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewTextInput creates an unfocused input. An empty label renders none.
func NewTextInput(s *styles.Styles, label, placeholder string) *TextInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Width = defaultWidth

	return &TextInput{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     defaultWidth,
	}
}

// Init initialises the input.
func (t *TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (t *TextInput) Update(msg tea.Msg) (*TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.textinput, cmd = t.textinput.Update(msg)
	return t, cmd
}

// View renders the input.
func (t *TextInput) View() string {
	frame := t.styles.Input
	if t.textinput.Focused() {
		frame = t.styles.FocusedInput
	}
	box := frame.Render(t.textinput.View())
	if t.label == "" {
		return box
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, t.styles.Subtitle.Render(t.label+" "), box)
}

// Value returns the current input value.
func (t *TextInput) Value() string {
	return t.textinput.Value()
}

// SetValue sets the input value.
func (t *TextInput) SetValue(value string) {
	t.textinput.SetValue(value)
}

// Placeholder returns the placeholder text.
func (t *TextInput) Placeholder() string {
	return t.textinput.Placeholder
}

// Label returns the label text.
func (t *TextInput) Label() string {
	return t.label
}

// Focus sets focus on the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.textinput.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.textinput.Blur()
}

// Focused returns whether the input is focused.
func (t *TextInput) Focused() bool {
	return t.textinput.Focused()
}

// SetWidth sets the width of the input, leaving room for the label and
// the frame.
func (t *TextInput) SetWidth(width int) {
	t.width = width
	inputWidth := width - lipgloss.Width(t.label) - 6
	if inputWidth < minWidth {
		inputWidth = minWidth
	}
	t.textinput.Width = inputWidth
}

// Width returns the current width.
func (t *TextInput) Width() int {
	return t.width
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.textinput.Reset()
}
