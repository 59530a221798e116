// Package playlists maintains the favorites and recently-played track lists.
//
// All functions are pure: they take a list and return the new list, leaving
// persistence to the caller. Track identity is decided by SameTrack alone.
package playlists

import "github.com/llehouerou/tunes/internal/catalog"

// SameTrack reports whether a and b refer to the same song.
// Identity is exact, case-sensitive title equality.
func SameTrack(a, b catalog.Track) bool {
	return a.Title == b.Title
}

// IndexOf returns the position of the first track matching t, or -1.
func IndexOf(tracks []catalog.Track, t catalog.Track) int {
	for i, candidate := range tracks {
		if SameTrack(candidate, t) {
			return i
		}
	}
	return -1
}

// Contains reports whether any track in tracks matches t.
func Contains(tracks []catalog.Track, t catalog.Track) bool {
	return IndexOf(tracks, t) >= 0
}

// RemoveAll returns a new list without any track matching t.
func RemoveAll(tracks []catalog.Track, t catalog.Track) []catalog.Track {
	result := make([]catalog.Track, 0, len(tracks))
	for _, candidate := range tracks {
		if !SameTrack(candidate, t) {
			result = append(result, candidate)
		}
	}
	return result
}

// Dedupe returns a new list keeping only the first occurrence of each track.
func Dedupe(tracks []catalog.Track) []catalog.Track {
	result := make([]catalog.Track, 0, len(tracks))
	for _, t := range tracks {
		if !Contains(result, t) {
			result = append(result, t)
		}
	}
	return result
}
