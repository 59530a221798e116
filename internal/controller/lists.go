package controller

import (
	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/playlists"
	"github.com/llehouerou/tunes/internal/state"
)

// AddRecently records t as the most recently played track and saves the list.
// The in-memory list changes even when saving fails.
func (c *Controller) AddRecently(t catalog.Track) error {
	c.recently = playlists.PushRecent(c.recently, t)
	if err := c.store.Put(state.SlotRecently, c.recently); err != nil {
		return &Error{Op: errmsg.OpRecentSave, Err: err}
	}
	return nil
}

// ToggleFavorite adds t to favorites, or removes every entry with its
// identity. It reports whether t is a favorite afterwards.
func (c *Controller) ToggleFavorite(t catalog.Track) (bool, error) {
	var added bool
	c.favorites, added = playlists.ToggleFavorite(c.favorites, t)
	if err := c.store.Put(state.SlotFavorites, c.favorites); err != nil {
		return added, &Error{Op: errmsg.OpFavoriteToggle, Err: err}
	}
	return added, nil
}

// ToggleCurrentFavorite toggles the track under the cursor.
func (c *Controller) ToggleCurrentFavorite() (bool, error) {
	t, ok := c.Current()
	if !ok {
		return false, nil
	}
	return c.ToggleFavorite(t)
}

// IsFavorite reports whether a track with t's identity is a favorite.
func (c *Controller) IsFavorite(t catalog.Track) bool {
	return playlists.Contains(c.favorites, t)
}
