package controller

import (
	"cmp"

	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/playlists"
)

// TogglePlayPause plays when the engine is paused and pauses otherwise.
func (c *Controller) TogglePlayPause() {
	if len(c.catalog) == 0 {
		return
	}
	if c.player.Paused() {
		c.player.Play()
		c.affordance = ShowPause
		return
	}
	c.player.Pause()
	c.affordance = ShowPlay
}

// ChangeSong moves the cursor by step, wrapping around the catalog, and
// starts playing the new track.
func (c *Controller) ChangeSong(step int) error {
	n := len(c.catalog)
	if n == 0 {
		return nil
	}
	return c.SelectSong(wrap(c.cursor+step, n))
}

// SelectSong moves the cursor to index and starts playing that track.
// An index outside the catalog is ignored.
func (c *Controller) SelectSong(index int) error {
	t, ok := c.catalog.Track(index)
	if !ok {
		return nil
	}
	c.cursor = index

	loadErr := c.loadTrack(t)
	c.player.Play()
	c.affordance = ShowPause
	recentErr := c.AddRecently(t)

	return cmp.Or(loadErr, recentErr)
}

// SelectTrack plays the catalog entry with the same identity as t.
// Tracks not in the catalog are ignored.
func (c *Controller) SelectTrack(t catalog.Track) error {
	i := playlists.IndexOf(c.catalog, t)
	if i < 0 {
		return nil
	}
	return c.SelectSong(i)
}

// wrap returns i modulo n in [0, n).
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
