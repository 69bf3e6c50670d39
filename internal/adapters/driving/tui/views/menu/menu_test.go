package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.Items(), 4)
	assert.Equal(t, 0, view.Selected())
	assert.Equal(t, domain.DefaultTitle, view.Title())
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Items(t *testing.T) {
	view := NewView(nil)

	labels := make([]string, 0, len(view.Items()))
	for _, item := range view.Items() {
		labels = append(labels, item.Label)
	}

	assert.Equal(t, []string{"Tasks", "Settings", "Help", "Quit"}, labels)
}

func TestView_Init(t *testing.T) {
	assert.Nil(t, NewView(nil).Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(j)
	view.Update(j)
	view.Update(j)
	assert.Equal(t, 3, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, view.Selected())

	k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(k)
	view.Update(k)
	view.Update(k)
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_Enter_ChangesView(t *testing.T) {
	tests := []struct {
		selected int
		want     messages.ViewType
	}{
		{0, messages.ViewTasks},
		{1, messages.ViewSettings},
		{2, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			view := NewView(nil)
			view.selected = tt.selected

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			require.NotNil(t, cmd)
			changed, ok := cmd().(messages.ViewChanged)
			require.True(t, ok)
			assert.Equal(t, tt.want, changed.View)
		})
	}
}

func TestView_Update_Enter_Quit(t *testing.T) {
	view := NewView(nil)
	view.selected = 3

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_Update_Q_Quits(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_View_NotReady(t *testing.T) {
	assert.Equal(t, "Initialising...", NewView(nil).View())
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)
	view.SetTitle("Chores")

	out := view.View()

	assert.Contains(t, out, "Chores")
	assert.Contains(t, out, "> Tasks")
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "Quit")
}

func TestView_SetTitle_IgnoresEmpty(t *testing.T) {
	view := NewView(nil)

	view.SetTitle("")

	assert.Equal(t, domain.DefaultTitle, view.Title())
}
