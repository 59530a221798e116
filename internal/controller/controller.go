// Package controller owns the player's state: the catalog, the playback
// cursor, favorites, recently played and the search query. Every method is
// meant to run on the UI event loop; nothing here is safe for concurrent use.
package controller

import (
	"cmp"
	"fmt"

	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/search"
	"github.com/llehouerou/tunes/internal/state"
)

// Affordance is the action the play/pause control offers next.
type Affordance string

const (
	ShowPlay  Affordance = "play"
	ShowPause Affordance = "pause"
)

// Error ties a failure to the user-level operation that caused it.
type Error struct {
	Op  errmsg.Op
	Err error
}

func (e *Error) Error() string { return errmsg.Format(e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Controller is the single owner of playback and list state.
type Controller struct {
	player player.Interface
	store  state.Store

	catalog    catalog.Catalog
	cursor     int
	affordance Affordance

	favorites []catalog.Track
	recently  []catalog.Track

	query   string
	matches []search.Match
}

// New creates a controller and reads the saved lists from store.
// A read failure leaves the lists empty; the controller is usable either way.
func New(p player.Interface, store state.Store) (*Controller, error) {
	c := &Controller{
		player:     p,
		store:      store,
		affordance: ShowPlay,
		favorites:  []catalog.Track{},
		recently:   []catalog.Track{},
	}

	favs, favErr := store.Get(state.SlotFavorites)
	if favErr == nil {
		c.favorites = favs
	}
	recent, recentErr := store.Get(state.SlotRecently)
	if recentErr == nil {
		c.recently = recent
	}

	if err := cmp.Or(favErr, recentErr); err != nil {
		return c, &Error{Op: errmsg.OpListLoad, Err: err}
	}
	return c, nil
}

// Load installs the catalog, resets the cursor to 0 and loads the first
// track's metadata without starting playback.
func (c *Controller) Load(cat catalog.Catalog) error {
	c.catalog = cat
	c.cursor = 0
	c.affordance = ShowPlay
	c.refilter()

	t, ok := c.catalog.Track(0)
	if !ok {
		return nil
	}
	return c.loadTrack(t)
}

// loadTrack hands the track's audio locator to the engine.
func (c *Controller) loadTrack(t catalog.Track) error {
	if err := c.player.Load(t.Path); err != nil {
		return &Error{Op: errmsg.OpPlaybackStart, Err: fmt.Errorf("%s: %w", t.Title, err)}
	}
	return nil
}

// Catalog returns the loaded catalog.
func (c *Controller) Catalog() catalog.Catalog { return c.catalog }

// Cursor returns the index of the current track.
func (c *Controller) Cursor() int { return c.cursor }

// Current returns the track under the cursor.
func (c *Controller) Current() (catalog.Track, bool) {
	return c.catalog.Track(c.cursor)
}

// Affordance returns the action the play/pause control shows.
func (c *Controller) Affordance() Affordance { return c.affordance }

// Playing reports whether audio is advancing.
func (c *Controller) Playing() bool { return !c.player.Paused() }

// Favorites returns the favorites list. Callers must not modify it.
func (c *Controller) Favorites() []catalog.Track { return c.favorites }

// Recently returns the recently played list, most recent first.
// Callers must not modify it.
func (c *Controller) Recently() []catalog.Track { return c.recently }
