// Package catalog loads the static song catalog the player works from.
package catalog

// Track is a single song descriptor as found in the catalog.
// Title is the identity key used to match tracks across lists.
type Track struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Path   string `json:"path"`  // audio resource locator
	Image  string `json:"image"` // cover art locator
}

// FilterValue implements search.Item.
func (t Track) FilterValue() string { return t.Title }

// DisplayText implements search.Item.
func (t Track) DisplayText() string { return t.Title }

// Catalog is the ordered list of available tracks.
type Catalog []Track

// Track returns the track at index, or false when out of range.
func (c Catalog) Track(index int) (Track, bool) {
	if index < 0 || index >= len(c) {
		return Track{}, false
	}
	return c[index], true
}
