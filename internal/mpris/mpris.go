//go:build linux

package mpris

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog/log"
)

const busName = "tunes"

// Adapter owns the MPRIS server for the lifetime of the program.
type Adapter struct {
	srv    *server.Server
	events *events.EventHandler
	board  *board
	last   Snapshot
}

// New registers on the session bus and starts serving in the background.
// It fails when no session bus is reachable.
func New(send Sender) (*Adapter, error) {
	// Listen reuses this shared connection.
	if _, err := dbus.SessionBus(); err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	b := &board{}
	srv := server.NewServer(busName, identity{}, &controls{send: send, board: b})
	a := &Adapter{srv: srv, events: events.NewEventHandler(srv), board: b}
	go func() {
		if err := srv.Listen(); err != nil {
			log.Debug().Err(err).Msg("mpris server stopped")
		}
	}()
	return a, nil
}

// Publish swaps in s and emits PropertiesChanged for the parts that moved.
// It is called from the UI loop only.
func (a *Adapter) Publish(s Snapshot) {
	a.board.set(s)
	prev := a.last
	a.last = s

	p := a.events.Player
	if prev.Playing != s.Playing || prev.Loaded != s.Loaded {
		_ = p.OnPlayPause()
	}
	if prev.Locator != s.Locator || prev.Duration != s.Duration {
		_ = p.OnTitle()
	}
	if prev.Volume != s.Volume {
		_ = p.OnVolume()
	}
}

func (a *Adapter) Close() error {
	return a.srv.Stop()
}

// identity answers the org.mpris.MediaPlayer2 root interface. The terminal
// owns its own window and lifetime, so Raise and Quit do nothing.
type identity struct{}

func (identity) Raise() error { return nil }
func (identity) Quit() error { return nil }
func (identity) CanQuit() (bool, error) { return false, nil }
func (identity) CanRaise() (bool, error) { return false, nil }
func (identity) HasTrackList() (bool, error) { return false, nil }
func (identity) Identity() (string, error) { return "Tunes", nil }
func (identity) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"}, nil
}

//nolint:revive // name fixed by the interface
func (identity) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

// controls answers org.mpris.MediaPlayer2.Player. Setters forward a Request
// and return at once; getters read the published snapshot.
type controls struct {
	send  Sender
	board *board
}

func (c *controls) forward(r Request) error {
	c.send(r)
	return nil
}

func (c *controls) Next() error { return c.forward(Request{Cmd: CmdNext}) }
func (c *controls) Previous() error { return c.forward(Request{Cmd: CmdPrevious}) }
func (c *controls) Pause() error { return c.forward(Request{Cmd: CmdPause}) }
func (c *controls) Stop() error { return c.forward(Request{Cmd: CmdPause}) }
func (c *controls) Play() error { return c.forward(Request{Cmd: CmdPlay}) }
func (c *controls) PlayPause() error { return c.forward(Request{Cmd: CmdPlayPause}) }

func (c *controls) Seek(offset types.Microseconds) error {
	return c.forward(Request{Cmd: CmdSeek, Offset: micros(offset)})
}

func (c *controls) SetPosition(_ string, pos types.Microseconds) error {
	return c.forward(Request{Cmd: CmdSetPosition, Offset: micros(pos)})
}

func (c *controls) SetVolume(v float64) error {
	return c.forward(Request{Cmd: CmdSetVolume, Volume: v})
}

//nolint:revive // name fixed by the interface
func (c *controls) OpenUri(string) error { return nil }

func (c *controls) SetRate(float64) error { return nil }

func (c *controls) PlaybackStatus() (types.PlaybackStatus, error) {
	s := c.board.get()
	if !s.Loaded {
		return types.PlaybackStatusStopped, nil
	}
	if s.Playing {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (c *controls) Metadata() (types.Metadata, error) {
	s := c.board.get()
	if !s.Loaded {
		return types.Metadata{}, nil
	}
	m := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.Locator)),
		Length:  types.Microseconds(s.Duration.Microseconds()),
		Title:   s.Title,
		ArtUrl:  artURL(s.Image),
	}
	if s.Artist != "" {
		m.Artist = []string{s.Artist}
	}
	return m, nil
}

func (c *controls) Volume() (float64, error) { return c.board.get().Volume, nil }

func (c *controls) Position() (int64, error) {
	return c.board.get().Position.Microseconds(), nil
}

func (c *controls) Rate() (float64, error) { return 1, nil }
func (c *controls) MinimumRate() (float64, error) { return 1, nil }
func (c *controls) MaximumRate() (float64, error) { return 1, nil }
func (c *controls) CanGoNext() (bool, error) { return c.board.get().Loaded, nil }
func (c *controls) CanGoPrevious() (bool, error) { return c.board.get().Loaded, nil }
func (c *controls) CanPlay() (bool, error) { return c.board.get().Loaded, nil }
func (c *controls) CanPause() (bool, error) { return true, nil }
func (c *controls) CanControl() (bool, error) { return true, nil }
func (c *controls) CanSeek() (bool, error) { return c.board.get().Duration > 0, nil }

func micros(us types.Microseconds) time.Duration {
	return time.Duration(us) * time.Microsecond
}
