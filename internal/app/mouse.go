package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tunes/internal/ui"
)

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, localY, ok := m.panels().At(msg.X, msg.Y-ui.SearchBarHeight)
	target := focusOf(p)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if ok {
			m.panel(target).Move(-1)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if ok {
			m.panel(target).Move(1)
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if msg.Y < ui.SearchBarHeight {
		m.setFocus(FocusSearch)
		return m, m.search.Focus()
	}
	if !ok {
		return m, nil
	}

	if m.focus == FocusSearch {
		m.search.Blur()
	}
	m.setFocus(target)

	if i, hit := m.panel(target).Click(localY); hit {
		return m, m.selectRow(target, i)
	}
	return m, nil
}
