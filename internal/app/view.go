package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tunes/internal/keymap"
	"github.com/llehouerou/tunes/internal/ui/playerbar"
	"github.com/llehouerou/tunes/internal/ui/render"
	"github.com/llehouerou/tunes/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var panels string
	if m.panels().Narrow {
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, m.favorites.View(), m.recent.View())
		panels = lipgloss.JoinVertical(lipgloss.Left, m.playlist.View(), bottom)
	} else {
		right := lipgloss.JoinVertical(lipgloss.Left, m.favorites.View(), m.recent.View())
		panels = lipgloss.JoinHorizontal(lipgloss.Top, m.playlist.View(), right)
	}

	parts := []string{
		m.search.View(),
		panels,
		playerbar.Render(playerbar.NewState(m.ctrl), m.width),
	}
	if m.showHelp {
		parts = append(parts, m.helpView())
	}
	parts = append(parts, m.statusLine())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// statusLine shows the last message, or the short key help when there is none.
func (m Model) statusLine() string {
	st := styles.T().S()
	switch {
	case m.status != "" && m.statusErr:
		return st.Error.Render(render.TruncateAndPad(m.status, m.width))
	case m.status != "":
		return st.Muted.Render(render.TruncateAndPad(m.status, m.width))
	}
	h := m.help
	h.ShowAll = false
	return h.View(keymap.HelpMap{})
}
