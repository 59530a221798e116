package app

import (
	"fmt"

	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/playlists"
	"github.com/llehouerou/tunes/internal/ui/tracklist"
)

// refreshLists rebuilds all three panels from the controller's lists.
func (m *Model) refreshLists() {
	current, hasCurrent := m.ctrl.Current()

	matches := m.ctrl.Matches()
	rows := make([]tracklist.Row, len(matches))
	for i, match := range matches {
		t, _ := m.ctrl.Catalog().Track(match.Index)
		rows[i] = tracklist.Row{
			Label:    t.Title,
			Favorite: m.ctrl.IsFavorite(t),
			Current:  hasCurrent && match.Index == m.ctrl.Cursor(),
		}
	}
	m.playlist.SetRows(rows)

	title := icons.PlaylistTitle()
	if q := m.ctrl.Query(); q != "" {
		title = fmt.Sprintf("%s %q", icons.FormatPanel(icons.Search(), "Search"), q)
	}
	m.playlist.SetTitle(title)

	m.favorites.SetRows(m.listRows(m.ctrl.Favorites(), current, hasCurrent))
	m.recent.SetRows(m.listRows(m.ctrl.Recently(), current, hasCurrent))
}

func (m *Model) listRows(list []catalog.Track, current catalog.Track, hasCurrent bool) []tracklist.Row {
	rows := make([]tracklist.Row, len(list))
	for i, t := range list {
		rows[i] = tracklist.Row{
			Label:    t.Title,
			Favorite: m.ctrl.IsFavorite(t),
			Current:  hasCurrent && playlists.SameTrack(t, current),
		}
	}
	return rows
}

// panel returns the list model for a focus target.
func (m *Model) panel(f Focus) *tracklist.Model {
	switch f {
	case FocusFavorites:
		return &m.favorites
	case FocusRecent:
		return &m.recent
	default:
		return &m.playlist
	}
}

// setFocus moves keyboard focus, remembering the last list panel.
func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f != FocusSearch {
		m.lastList = f
	}
	m.playlist.SetFocused(f == FocusPlaylist)
	m.favorites.SetFocused(f == FocusFavorites)
	m.recent.SetFocused(f == FocusRecent)
}

// cycleFocus moves through the list panels.
func (m *Model) cycleFocus() {
	next := FocusPlaylist
	switch m.focus {
	case FocusPlaylist:
		next = FocusFavorites
	case FocusFavorites:
		next = FocusRecent
	}
	m.setFocus(next)
}

// trackAt returns the track shown on row i of the panel f.
func (m *Model) trackAt(f Focus, i int) (catalog.Track, bool) {
	var list []catalog.Track
	switch f {
	case FocusPlaylist:
		return m.ctrl.MatchTrack(i)
	case FocusFavorites:
		list = m.ctrl.Favorites()
	case FocusRecent:
		list = m.ctrl.Recently()
	}
	if i < 0 || i >= len(list) {
		return catalog.Track{}, false
	}
	return list[i], true
}
