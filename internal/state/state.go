package state

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/tunes/internal/catalog"
)

const (
	appName    = "tunes"
	dbFileName = "tunes.db"
)

// Manager persists player state in a SQLite database.
type Manager struct {
	db *sql.DB
}

// Open opens the state database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbPath)
}

// OpenAt opens (or creates) the state database at dbPath.
func OpenAt(dbPath string) (*Manager, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases alive and writes serialized.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Get returns the tracks stored in slot. An absent slot yields an empty list.
func (m *Manager) Get(slot string) ([]catalog.Track, error) {
	return getSlot(m.db, slot)
}

// Put overwrites slot with tracks.
func (m *Manager) Put(slot string, tracks []catalog.Track) error {
	return putSlot(m.db, slot, tracks)
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
