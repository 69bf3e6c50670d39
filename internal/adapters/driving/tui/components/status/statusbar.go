// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

// Bar displays task counts, the current order, the last error and
// keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	total    int
	shown    int
	order    domain.SortOrder
	message  string
	err      error
	bindings []key.Binding
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:   s,
		keymap:   km,
		bindings: km.ShortHelp(),
		width:    80,
	}
}

// Init initialises the status bar.
func (b *Bar) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the bar is driven through its setters.
func (b *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	return b, nil
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()
	if lipgloss.Width(left)+lipgloss.Width(right)+3 > b.width {
		right = ""
	}

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (b *Bar) renderLeft() string {
	if b.err != nil {
		return b.styles.Error.Render("Error: " + b.err.Error())
	}

	counts := fmt.Sprintf("%d tasks", b.total)
	if b.shown != b.total {
		counts = fmt.Sprintf("%d of %d tasks", b.shown, b.total)
	}
	parts := []string{counts, "order: " + b.order.Label()}
	if b.message != "" {
		parts = append(parts, b.message)
	}
	return b.styles.Normal.Render(strings.Join(parts, " · "))
}

func (b *Bar) renderRight() string {
	hints := make([]string, 0, len(b.bindings))
	for _, binding := range b.bindings {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetCounts sets the number of tasks in the store and on screen.
func (b *Bar) SetCounts(total, shown int) {
	b.total = total
	b.shown = shown
}

// Total returns the number of stored tasks.
func (b *Bar) Total() int {
	return b.total
}

// Shown returns the number of displayed tasks.
func (b *Bar) Shown() int {
	return b.shown
}

// SetOrder sets the order shown in the bar.
func (b *Bar) SetOrder(order domain.SortOrder) {
	b.order = order
}

// Order returns the displayed order.
func (b *Bar) Order() domain.SortOrder {
	return b.order
}

// SetMessage sets an informational message.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetError records the last error. Nil clears it.
func (b *Bar) SetError(err error) {
	b.err = err
}

// Err returns the last error.
func (b *Bar) Err() error {
	return b.err
}

// SetBindings replaces the keybinding hints.
func (b *Bar) SetBindings(bindings []key.Binding) {
	b.bindings = bindings
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}

// Clear resets the message and error.
func (b *Bar) Clear() {
	b.message = ""
	b.err = nil
}
