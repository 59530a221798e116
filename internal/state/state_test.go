package state

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/llehouerou/tunes/internal/catalog"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func sampleTracks() []catalog.Track {
	return []catalog.Track{
		{Title: "Song A", Artist: "Artist 1", Path: "/music/a.mp3", Image: "/music/a.jpg"},
		{Title: "Song B", Artist: "", Path: "/music/b.flac", Image: ""},
	}
}

// TestGetSlot_Empty tests that an absent slot reads as an empty list.
func TestGetSlot_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	tracks, err := getSlot(db, SlotFavorites)
	if err != nil {
		t.Fatalf("getSlot failed: %v", err)
	}
	if tracks == nil {
		t.Fatal("expected empty non-nil list")
	}
	if len(tracks) != 0 {
		t.Errorf("len = %d, want 0", len(tracks))
	}
}

// TestPutAndGetSlot tests saving and retrieving a slot.
func TestPutAndGetSlot(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	want := sampleTracks()
	if err := putSlot(db, SlotFavorites, want); err != nil {
		t.Fatalf("putSlot failed: %v", err)
	}

	got, err := getSlot(db, SlotFavorites)
	if err != nil {
		t.Fatalf("getSlot failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tracks[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestPutSlot_Overwrites tests that a put replaces the whole slot.
func TestPutSlot_Overwrites(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := putSlot(db, SlotRecently, sampleTracks()); err != nil {
		t.Fatalf("putSlot failed: %v", err)
	}
	replacement := []catalog.Track{{Title: "Only"}}
	if err := putSlot(db, SlotRecently, replacement); err != nil {
		t.Fatalf("putSlot failed: %v", err)
	}

	got, err := getSlot(db, SlotRecently)
	if err != nil {
		t.Fatalf("getSlot failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Only" {
		t.Errorf("got %+v, want only the replacement", got)
	}

	// Clearing a slot is a put of an empty list.
	if err := putSlot(db, SlotRecently, nil); err != nil {
		t.Fatalf("putSlot failed: %v", err)
	}
	got, _ = getSlot(db, SlotRecently)
	if len(got) != 0 {
		t.Errorf("len = %d after clearing, want 0", len(got))
	}
}

// TestSlotsAreIndependent tests that slots do not leak into each other.
func TestSlotsAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := putSlot(db, SlotFavorites, sampleTracks()); err != nil {
		t.Fatalf("putSlot failed: %v", err)
	}
	if err := putSlot(db, SlotRecently, []catalog.Track{{Title: "R"}}); err != nil {
		t.Fatalf("putSlot failed: %v", err)
	}

	favs, _ := getSlot(db, SlotFavorites)
	recent, _ := getSlot(db, SlotRecently)
	if len(favs) != 2 {
		t.Errorf("favorites len = %d, want 2", len(favs))
	}
	if len(recent) != 1 || recent[0].Title != "R" {
		t.Errorf("recently = %+v", recent)
	}
}

// TestPutSlot_PreservesOrder tests that positions round-trip in order.
func TestPutSlot_PreservesOrder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	titles := []string{"C", "A", "B", "A"}
	tracks := make([]catalog.Track, len(titles))
	for i, title := range titles {
		tracks[i] = catalog.Track{Title: title}
	}
	if err := putSlot(db, SlotRecently, tracks); err != nil {
		t.Fatalf("putSlot failed: %v", err)
	}

	got, _ := getSlot(db, SlotRecently)
	for i, title := range titles {
		if got[i].Title != title {
			t.Errorf("tracks[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}

// TestManagerVolume tests the saved volume lifecycle on a file database.
func TestManagerVolume(t *testing.T) {
	m, err := OpenAt(filepath.Join(t.TempDir(), "state", "tunes.db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	defer m.Close()

	vol, err := m.GetVolume()
	if err != nil {
		t.Fatalf("GetVolume failed: %v", err)
	}
	if vol != nil {
		t.Errorf("expected nil volume on fresh db, got %+v", vol)
	}

	for _, level := range []float64{0.4, 0.75} {
		if err := m.SaveVolume(level); err != nil {
			t.Fatalf("SaveVolume failed: %v", err)
		}
		vol, err = m.GetVolume()
		if err != nil {
			t.Fatalf("GetVolume failed: %v", err)
		}
		if vol == nil || vol.Volume != level {
			t.Errorf("volume = %+v, want %v", vol, level)
		}
	}
}

// TestManagerReopen tests that slots survive closing and reopening the database.
func TestManagerReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunes.db")

	m, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	if err := m.Put(SlotFavorites, sampleTracks()); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	m.Close()

	m, err = OpenAt(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	got, err := m.Get(SlotFavorites)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Song A" {
		t.Errorf("got %+v after reopen", got)
	}
}

func TestMockCopiesLists(t *testing.T) {
	m := NewMock()
	tracks := sampleTracks()
	if err := m.Put(SlotFavorites, tracks); err != nil {
		t.Fatal(err)
	}
	tracks[0].Title = "mutated"

	got, _ := m.Get(SlotFavorites)
	if got[0].Title != "Song A" {
		t.Errorf("mock shares caller slice: %q", got[0].Title)
	}
	if m.PutCalls() != 1 {
		t.Errorf("PutCalls = %d, want 1", m.PutCalls())
	}
}
