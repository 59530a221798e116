package playlists

import "github.com/llehouerou/tunes/internal/catalog"

// ToggleFavorite adds t to favorites if not there, removes every matching entry otherwise.
// Returns the new list and the new favorite status (true = now favorited).
func ToggleFavorite(favorites []catalog.Track, t catalog.Track) ([]catalog.Track, bool) {
	if Contains(favorites, t) {
		return RemoveAll(favorites, t), false
	}

	result := make([]catalog.Track, 0, len(favorites)+1)
	result = append(result, favorites...)
	return append(result, t), true
}
