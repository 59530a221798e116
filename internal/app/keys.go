package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tunes/internal/controller"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/keymap"
	"github.com/llehouerou/tunes/internal/speech"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == FocusSearch {
		return m.handleSearchKey(msg)
	}

	list := m.panel(m.focus)

	switch m.listKeys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionSwitchFocus:
		m.cycleFocus()
	case keymap.ActionSearch:
		m.setFocus(FocusSearch)
		return m, m.search.Focus()
	case keymap.ActionVoiceSearch:
		return m, m.startVoiceSearch()
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		m.layout()

	case keymap.ActionPlayPause:
		m.togglePlayPause()
	case keymap.ActionNextTrack:
		return m, m.changeSong(1)
	case keymap.ActionPrevTrack:
		return m, m.changeSong(-1)
	case keymap.ActionSeekForward:
		m.seekBy(seekStep)
	case keymap.ActionSeekBack:
		m.seekBy(-seekStep)
	case keymap.ActionVolumeUp:
		m.setVolume(m.ctrl.Volume() + volumeStep)
	case keymap.ActionVolumeDown:
		m.setVolume(m.ctrl.Volume() - volumeStep)

	case keymap.ActionMoveUp:
		list.Move(-1)
	case keymap.ActionMoveDown:
		list.Move(1)
	case keymap.ActionJumpStart:
		list.JumpStart()
	case keymap.ActionJumpEnd:
		list.JumpEnd()
	case keymap.ActionSelect:
		if i, ok := list.Selected(); ok {
			return m, m.selectRow(m.focus, i)
		}
	case keymap.ActionToggleFavorite:
		m.toggleFavorite()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.searchKeys.Resolve(msg.String()) {
	case keymap.ActionSearchAccept:
		// The results live in the playlist panel.
		m.search.Blur()
		m.setFocus(FocusPlaylist)
		return m, nil
	case keymap.ActionSearchCancel:
		// Back to whichever panel the search was opened from.
		m.search.SetValue("")
		m.search.Blur()
		m.setQuery("")
		m.setFocus(m.lastList)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.ctrl.Query() {
		m.setQuery(v)
	}
	return m, cmd
}

// setQuery runs the same path for typed and spoken queries.
func (m *Model) setQuery(q string) {
	m.ctrl.SetQuery(q)
	m.refreshLists()
	m.playlist.JumpStart()
}

func (m *Model) startVoiceSearch() tea.Cmd {
	if m.recognizer == nil {
		m.setError(&controller.Error{Op: errmsg.OpVoiceSearch, Err: speech.ErrNotConfigured})
		return nil
	}
	if m.search.Listening() {
		return nil
	}
	m.search.SetListening(true)
	return ListenCmd(m.recognizer)
}
