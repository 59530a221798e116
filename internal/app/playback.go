package app

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tunes/internal/controller"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/mpris"
	"github.com/llehouerou/tunes/internal/playlists"
)

const (
	seekStep   = 5.0  // percent of the track
	volumeStep = 0.05 // of full scale
)

// selectRow plays the track on row i of panel f.
func (m *Model) selectRow(f Focus, i int) tea.Cmd {
	if f == FocusPlaylist {
		if _, ok := m.ctrl.MatchTrack(i); !ok {
			return nil
		}
		return m.afterTrackChange(m.ctrl.SelectMatch(i))
	}

	t, ok := m.trackAt(f, i)
	if !ok {
		return nil
	}
	if !playlists.Contains(m.ctrl.Catalog(), t) {
		m.setStatus(t.Title + " is not in the catalog")
		return nil
	}
	return m.afterTrackChange(m.ctrl.SelectTrack(t))
}

func (m *Model) changeSong(step int) tea.Cmd {
	if len(m.ctrl.Catalog()) == 0 {
		return nil
	}
	return m.afterTrackChange(m.ctrl.ChangeSong(step))
}

// afterTrackChange refreshes every surface that shows the current track.
func (m *Model) afterTrackChange(err error) tea.Cmd {
	if err != nil {
		m.setError(err)
	} else if m.statusErr {
		m.setStatus("")
	}
	m.refreshLists()
	m.playlist.JumpTo(m.currentRow())
	m.publish()

	t, ok := m.ctrl.Current()
	if !ok {
		return nil
	}
	return NotifyCmd(m.nowPlaying, t)
}

// currentRow returns the playlist row showing the current track, or 0.
func (m Model) currentRow() int {
	for i, match := range m.ctrl.Matches() {
		if match.Index == m.ctrl.Cursor() {
			return i
		}
	}
	return 0
}

func (m *Model) togglePlayPause() {
	m.ctrl.TogglePlayPause()
	m.publish()
}

// seekBy moves the seek control by delta percent, clamped to the control's range.
func (m *Model) seekBy(delta float64) {
	m.ctrl.Seek(min(max(m.ctrl.Progress().Percent+delta, 0), 100))
	m.publish()
}

// setVolume applies and saves a volume in [0, 1].
func (m *Model) setVolume(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = math.Round(min(max(v, 0), 1)*100) / 100
	m.ctrl.SetVolume(v)
	if err := m.store.SaveVolume(v); err != nil {
		m.setError(&controller.Error{Op: errmsg.OpVolumeSave, Err: err})
	}
	m.publish()
}

func (m *Model) toggleFavorite() {
	t, ok := m.ctrl.Current()
	if !ok {
		return
	}
	added, err := m.ctrl.ToggleCurrentFavorite()
	switch {
	case err != nil:
		m.setError(err)
	case added:
		m.setStatus("Added to favorites: " + t.Title)
	default:
		m.setStatus("Removed from favorites: " + t.Title)
	}
	m.refreshLists()
}

// snapshot captures what media widgets show.
func (m Model) snapshot() mpris.Snapshot {
	s := mpris.Snapshot{
		Playing:  m.ctrl.Playing(),
		Position: m.ctrl.Elapsed(),
		Duration: m.ctrl.Duration(),
		Volume:   m.ctrl.Volume(),
	}
	if t, ok := m.ctrl.Current(); ok {
		s.Loaded = true
		s.Title = t.Title
		s.Artist = t.Artist
		s.Locator = t.Path
		s.Image = t.Image
	}
	return s
}

func (m Model) publish() {
	if m.media != nil {
		m.media.Publish(m.snapshot())
	}
}

// handleMediaRequest applies a control that arrived over D-Bus.
func (m Model) handleMediaRequest(req mpris.Request) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch req.Cmd {
	case mpris.CmdPlayPause:
		m.ctrl.TogglePlayPause()
	case mpris.CmdPlay:
		if !m.ctrl.Playing() {
			m.ctrl.TogglePlayPause()
		}
	case mpris.CmdPause:
		if m.ctrl.Playing() {
			m.ctrl.TogglePlayPause()
		}
	case mpris.CmdNext:
		cmd = m.changeSong(1)
	case mpris.CmdPrevious:
		cmd = m.changeSong(-1)
	case mpris.CmdSeek:
		m.ctrl.SeekTo(m.ctrl.Elapsed() + req.Offset)
	case mpris.CmdSetPosition:
		m.ctrl.SeekTo(req.Offset)
	case mpris.CmdSetVolume:
		m.setVolume(req.Volume)
	}
	m.publish()
	return m, cmd
}
