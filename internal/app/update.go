package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/tunes/internal/controller"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/mpris"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case TickMsg:
		m.publish()
		return m, TickCmd()

	case VoiceResultMsg:
		return m.handleVoiceResult(msg)

	case StderrMsg:
		log.Warn().Str("line", string(msg)).Msg("audio backend")
		m.status = string(msg)
		m.statusErr = true
		return m, WatchStderr()

	case mpris.Request:
		return m.handleMediaRequest(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.setError(&controller.Error{Op: errmsg.OpCatalogLoad, Err: msg.Err})
		m.playlist.SetRows(nil)
		return m, nil
	}

	err := m.ctrl.Load(msg.Catalog)
	count := humanize.Comma(int64(len(msg.Catalog)))
	log.Info().Str("source", m.source).Str("tracks", count).Msg("catalog loaded")

	if err != nil {
		m.setError(err)
	} else {
		m.setStatus("Loaded " + count + " tracks")
	}
	m.refreshLists()
	m.playlist.JumpStart()
	m.publish()
	return m, nil
}

func (m Model) handleVoiceResult(msg VoiceResultMsg) (tea.Model, tea.Cmd) {
	m.search.SetListening(false)
	if msg.Err != nil {
		log.Error().Err(msg.Err).Msg(errmsg.Format(errmsg.OpVoiceSearch, msg.Err))
		return m, nil
	}

	text, ok := msg.Result.Transcript()
	if !ok {
		log.Debug().Msg("voice search heard nothing")
		return m, nil
	}
	log.Debug().Msgf("voice search: %q", text)

	m.search.SetValue(text)
	m.setQuery(text)
	return m, nil
}
