package playlists

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/tunes/internal/catalog"
)

func track(title string) catalog.Track {
	return catalog.Track{Title: title, Artist: "Artist", Path: "/music/" + title + ".mp3"}
}

func titles(tracks []catalog.Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.Title
	}
	return out
}

func TestSameTrack(t *testing.T) {
	a := catalog.Track{Title: "Song", Path: "/a.mp3"}
	b := catalog.Track{Title: "Song", Path: "/b.mp3", Artist: "Other"}
	c := catalog.Track{Title: "song", Path: "/a.mp3"}

	assert.True(t, SameTrack(a, b), "same title, different locators")
	assert.False(t, SameTrack(a, c), "title match is case-sensitive")
}

func TestIndexOf(t *testing.T) {
	list := []catalog.Track{track("A"), track("B"), track("A")}

	assert.Equal(t, 0, IndexOf(list, track("A")))
	assert.Equal(t, 1, IndexOf(list, track("B")))
	assert.Equal(t, -1, IndexOf(list, track("C")))
	assert.Equal(t, -1, IndexOf(nil, track("A")))
}

func TestRemoveAll(t *testing.T) {
	list := []catalog.Track{track("A"), track("B"), track("A")}

	got := RemoveAll(list, track("A"))

	assert.Equal(t, []string{"B"}, titles(got))
	assert.Equal(t, []string{"A", "B", "A"}, titles(list), "input must not be modified")
}

func TestDedupe_KeepsFirst(t *testing.T) {
	first := catalog.Track{Title: "A", Path: "/first.mp3"}
	later := catalog.Track{Title: "A", Path: "/later.mp3"}

	got := Dedupe([]catalog.Track{first, track("B"), later})

	assert.Equal(t, []string{"A", "B"}, titles(got))
	assert.Equal(t, "/first.mp3", got[0].Path)
}

func TestPushRecent_MovesToFront(t *testing.T) {
	var recent []catalog.Track
	recent = PushRecent(recent, track("A"))
	recent = PushRecent(recent, track("B"))
	recent = PushRecent(recent, track("A"))

	assert.Equal(t, []string{"A", "B"}, titles(recent))
}

func TestPushRecent_NewestEntryWins(t *testing.T) {
	old := catalog.Track{Title: "A", Path: "/old.mp3"}
	newer := catalog.Track{Title: "A", Path: "/new.mp3"}

	recent := PushRecent([]catalog.Track{old}, newer)

	assert.Len(t, recent, 1)
	assert.Equal(t, "/new.mp3", recent[0].Path)
}

func TestPushRecent_Cap(t *testing.T) {
	var recent []catalog.Track
	for i := range 11 {
		recent = PushRecent(recent, track(fmt.Sprintf("T%d", i)))
	}

	want := []string{"T10", "T9", "T8", "T7", "T6", "T5", "T4", "T3", "T2", "T1"}
	assert.Equal(t, want, titles(recent))
}

func TestPushRecent_CollapsesDuplicatesAlreadyStored(t *testing.T) {
	// A list read back from storage may hold duplicates; pushing cleans them up.
	stored := []catalog.Track{track("B"), track("C"), track("B")}

	got := PushRecent(stored, track("A"))

	assert.Equal(t, []string{"A", "B", "C"}, titles(got))
}

func TestToggleFavorite(t *testing.T) {
	tests := []struct {
		name       string
		favorites  []catalog.Track
		toggle     catalog.Track
		wantTitles []string
		wantFav    bool
	}{
		{
			name:       "add to empty",
			favorites:  nil,
			toggle:     track("A"),
			wantTitles: []string{"A"},
			wantFav:    true,
		},
		{
			name:       "append keeps order",
			favorites:  []catalog.Track{track("A")},
			toggle:     track("B"),
			wantTitles: []string{"A", "B"},
			wantFav:    true,
		},
		{
			name:       "remove existing",
			favorites:  []catalog.Track{track("A"), track("B")},
			toggle:     track("A"),
			wantTitles: []string{"B"},
			wantFav:    false,
		},
		{
			name:       "remove all duplicates",
			favorites:  []catalog.Track{track("A"), track("B"), track("A")},
			toggle:     track("A"),
			wantTitles: []string{"B"},
			wantFav:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fav := ToggleFavorite(tt.favorites, tt.toggle)
			assert.Equal(t, tt.wantTitles, titles(got))
			assert.Equal(t, tt.wantFav, fav)
		})
	}
}

func TestToggleFavorite_Twice(t *testing.T) {
	original := []catalog.Track{track("A"), track("B")}

	for _, tr := range []catalog.Track{track("A"), track("C")} {
		once, _ := ToggleFavorite(original, tr)
		twice, _ := ToggleFavorite(once, tr)
		assert.ElementsMatch(t, titles(original), titles(twice), "toggle %q twice", tr.Title)
	}
}
