package controller

import (
	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/search"
)

// SetQuery filters the playlist view by a case-insensitive title substring.
func (c *Controller) SetQuery(query string) {
	c.query = query
	c.refilter()
}

// Query returns the current search query.
func (c *Controller) Query() string { return c.query }

// Matches returns the catalog entries visible under the current query.
// Each match carries its index in the full catalog.
func (c *Controller) Matches() []search.Match { return c.matches }

// MatchTrack returns the track of the i-th visible match.
func (c *Controller) MatchTrack(i int) (catalog.Track, bool) {
	if i < 0 || i >= len(c.matches) {
		return catalog.Track{}, false
	}
	return c.catalog.Track(c.matches[i].Index)
}

// SelectMatch plays the i-th visible match from its true catalog position.
func (c *Controller) SelectMatch(i int) error {
	if i < 0 || i >= len(c.matches) {
		return nil
	}
	return c.SelectSong(c.matches[i].Index)
}

func (c *Controller) refilter() {
	c.matches = search.Filter([]catalog.Track(c.catalog), c.query)
}
