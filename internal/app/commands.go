package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/notify"
	"github.com/llehouerou/tunes/internal/speech"
	"github.com/llehouerou/tunes/internal/stderr"
)

// tickInterval is how often the seek bar and timers refresh.
const tickInterval = 250 * time.Millisecond

// listenTimeout bounds one voice capture.
const listenTimeout = 30 * time.Second

// TickCmd returns a command that sends TickMsg after tickInterval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LoadCatalogCmd fetches the catalog once.
func LoadCatalogCmd(source string) tea.Cmd {
	return func() tea.Msg {
		cat, err := catalog.Load(context.Background(), source)
		return CatalogLoadedMsg{Catalog: cat, Err: err}
	}
}

// ListenCmd captures one utterance.
func ListenCmd(r speech.Recognizer) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
		defer cancel()
		res, err := r.Listen(ctx)
		return VoiceResultMsg{Result: res, Err: err}
	}
}

// WatchStderr returns a command that waits for stderr output from C libraries.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil
		}
		return StderrMsg(line)
	}
}

// NotifyCmd shows the now-playing notification off the UI loop.
func NotifyCmd(np *notify.NowPlaying, t catalog.Track) tea.Cmd {
	if np == nil {
		return nil
	}
	return func() tea.Msg {
		if err := np.Show(t); err != nil {
			log.Debug().Err(err).Str("title", t.Title).Msg("now playing notification failed")
		}
		return nil
	}
}
