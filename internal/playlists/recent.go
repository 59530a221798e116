package playlists

import "github.com/llehouerou/tunes/internal/catalog"

// RecentLimit is the number of entries kept in the recently-played list.
const RecentLimit = 10

// PushRecent records t as the most recently played track.
//
// The track is inserted at the front first and the list deduplicated after,
// so a track already present collapses to its new front position.
// The result holds at most RecentLimit entries.
func PushRecent(recent []catalog.Track, t catalog.Track) []catalog.Track {
	list := make([]catalog.Track, 0, len(recent)+1)
	list = append(list, t)
	list = append(list, recent...)

	list = Dedupe(list)
	if len(list) > RecentLimit {
		list = list[:RecentLimit]
	}
	return list
}
