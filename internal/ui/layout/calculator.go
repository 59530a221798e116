// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which the layout switches to narrow mode.
// In narrow mode, favorites and recently played sit side by side below the playlist
// instead of stacked beside it.
const NarrowThreshold = 80

// ContentOpts contains the fixed-height rows around the panels.
type ContentOpts struct {
	SearchBarHeight int
	PlayerBarHeight int
	StatusHeight    int
	HelpHeight      int // 0 when the full help is hidden
}

// ContentHeight calculates the available height for the panels row.
// It never goes below zero.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.SearchBarHeight
	height -= opts.PlayerBarHeight
	height -= opts.StatusHeight
	height -= opts.HelpHeight
	return max(height, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// Panel names one of the list panels.
type Panel int

const (
	PanelPlaylist Panel = iota
	PanelFavorites
	PanelRecent
)

// Rect is a panel's box relative to the top-left of the panels row.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Panels holds the boxes of the three list panels.
type Panels struct {
	Playlist  Rect
	Favorites Rect
	Recent    Rect
	Narrow    bool
}

// Compute splits the panels row.
// Wide: playlist takes 3/5 of the width; favorites over recently played fill the rest.
// Narrow: playlist takes the top half; favorites and recently played share the bottom.
func Compute(width, height int) Panels {
	if IsNarrowMode(width) {
		top := height / 2
		left := width / 2
		return Panels{
			Playlist:  Rect{0, 0, width, top},
			Favorites: Rect{0, top, left, height - top},
			Recent:    Rect{left, top, width - left, height - top},
			Narrow:    true,
		}
	}

	left := width * 3 / 5
	favHeight := height / 2
	return Panels{
		Playlist:  Rect{0, 0, left, height},
		Favorites: Rect{left, 0, width - left, favHeight},
		Recent:    Rect{left, favHeight, width - left, height - favHeight},
	}
}

// Rect returns the box of panel p.
func (ps Panels) Rect(p Panel) Rect {
	switch p {
	case PanelFavorites:
		return ps.Favorites
	case PanelRecent:
		return ps.Recent
	default:
		return ps.Playlist
	}
}

// At finds the panel under a point and returns y relative to that panel's top edge.
func (ps Panels) At(x, y int) (p Panel, localY int, ok bool) {
	for _, cand := range []Panel{PanelPlaylist, PanelFavorites, PanelRecent} {
		r := ps.Rect(cand)
		if r.Contains(x, y) {
			return cand, y - r.Y, true
		}
	}
	return PanelPlaylist, 0, false
}
