// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Accent highlights the selected task, focused input and buttons.
	Accent lipgloss.Color

	// AccentText is drawn on top of Accent.
	AccentText lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for placeholders and hints.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border frames inputs and the list.
	Border lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:     lipgloss.Color("#4CAF50"), // Green
		AccentText: lipgloss.Color("#FFFFFF"),
		Foreground: lipgloss.Color("#E0E0E0"),
		Muted:      lipgloss.Color("#8A8A8A"),
		Error:      lipgloss.Color("#E57373"),
		Border:     lipgloss.Color("#4A4949"),
		Bar:        lipgloss.Color("#202020"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style

	// Input frames an unfocused text input; FocusedInput a focused one.
	Input        lipgloss.Style
	FocusedInput lipgloss.Style

	// Button renders the order toggle.
	Button lipgloss.Style

	// List frames the task list.
	List lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.AccentText).
			Background(theme.Accent),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		FocusedInput: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(theme.AccentText).
			Background(theme.Accent).
			Padding(0, 1),

		List: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
