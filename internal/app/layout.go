package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tunes/internal/keymap"
	"github.com/llehouerou/tunes/internal/ui"
	"github.com/llehouerou/tunes/internal/ui/layout"
	"github.com/llehouerou/tunes/internal/ui/playerbar"
)

// Screen layout, top to bottom: search bar, panels, player bar, optional
// full help, status line.

func (m Model) panels() layout.Panels {
	opts := layout.ContentOpts{
		SearchBarHeight: ui.SearchBarHeight,
		PlayerBarHeight: playerbar.Height,
		StatusHeight:    ui.StatusHeight,
	}
	if m.showHelp {
		opts.HelpHeight = lipgloss.Height(m.helpView())
	}
	return layout.Compute(m.width, layout.ContentHeight(m.height, opts))
}

// layout sizes the components for the current window.
func (m *Model) layout() {
	m.search.SetSize(m.width, ui.SearchBarHeight)
	m.help.Width = m.width

	ps := m.panels()
	for _, f := range []Focus{FocusPlaylist, FocusFavorites, FocusRecent} {
		r := ps.Rect(panelOf(f))
		list := m.panel(f)
		list.SetSize(r.Width, r.Height)
		// Re-clamp scroll offsets for the new height.
		list.SetRows(list.Rows())
	}
}

func (m Model) helpView() string {
	h := m.help
	h.ShowAll = true
	return h.View(keymap.HelpMap{})
}

func panelOf(f Focus) layout.Panel {
	switch f {
	case FocusFavorites:
		return layout.PanelFavorites
	case FocusRecent:
		return layout.PanelRecent
	default:
		return layout.PanelPlaylist
	}
}

func focusOf(p layout.Panel) Focus {
	switch p {
	case layout.PanelFavorites:
		return FocusFavorites
	case layout.PanelRecent:
		return FocusRecent
	default:
		return FocusPlaylist
	}
}
