// Package searchbar is the single-line filter field above the track panels.
package searchbar

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/ui"
	"github.com/llehouerou/tunes/internal/ui/render"
	"github.com/llehouerou/tunes/internal/ui/styles"
)

// Model wraps a text input with the search icon and voice status.
type Model struct {
	ui.Base
	input     textinput.Model
	listening bool
}

// New creates an unfocused, empty search field.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.Prompt = ""
	ti.CharLimit = 256
	return Model{input: ti}
}

// SetSize sets the outer size of the bar.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = m.inputWidth(0)
}

// inputWidth leaves room for the icon, the caret and a right-hand status.
func (m Model) inputWidth(statusWidth int) int {
	return max(m.Width()-ui.BorderHeight-m.decorWidth()-statusWidth-2, 1)
}

// Focus gives the field keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.SetFocused(true)
	return m.input.Focus()
}

// Blur removes keyboard focus, keeping the text.
func (m *Model) Blur() {
	m.SetFocused(false)
	m.input.Blur()
}

// Value returns the current query text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the query text and moves the caret to the end.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// SetListening toggles the voice capture indicator.
func (m *Model) SetListening(on bool) {
	m.listening = on
}

// Listening reports whether voice capture is in progress.
func (m Model) Listening() bool {
	return m.listening
}

// Update forwards a message to the text input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) decorWidth() int {
	return lipgloss.Width(icons.Search()) + 1
}

// View renders the bar at its configured size.
func (m Model) View() string {
	if m.Width() == 0 {
		return ""
	}
	innerWidth := max(m.Width()-ui.BorderHeight, 0)

	right := ""
	if m.listening {
		right = styles.T().S().Playing.Render(icons.Voice() + " listening…")
	}
	m.input.Width = m.inputWidth(lipgloss.Width(right))
	left := styles.T().S().Muted.Render(icons.Search()+" ") + m.input.View()

	return styles.Panel(render.Row(left, right, innerWidth), m.Width(), ui.SearchBarHeight, m.IsFocused())
}
