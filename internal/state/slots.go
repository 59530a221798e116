package state

import (
	"database/sql"

	"github.com/llehouerou/tunes/internal/catalog"
	dbutil "github.com/llehouerou/tunes/internal/db"
)

// Named slots holding persisted track lists.
const (
	SlotFavorites = "favorites"
	SlotRecently  = "recently"
)

func getSlot(db *sql.DB, slot string) ([]catalog.Track, error) {
	rows, err := db.Query(`
		SELECT title, artist, path, image
		FROM slot_tracks
		WHERE slot = ?
		ORDER BY position
	`, slot)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracks := []catalog.Track{}
	for rows.Next() {
		var t catalog.Track
		var artist, path, image sql.NullString

		if err := rows.Scan(&t.Title, &artist, &path, &image); err != nil {
			return nil, err
		}

		t.Artist = dbutil.NullStringValue(artist)
		t.Path = dbutil.NullStringValue(path)
		t.Image = dbutil.NullStringValue(image)
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

func putSlot(sqlDB *sql.DB, slot string, tracks []catalog.Track) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM slot_tracks WHERE slot = ?`, slot); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO slot_tracks (slot, position, title, artist, path, image)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, t := range tracks {
			if _, err := stmt.Exec(slot, i, t.Title, t.Artist, t.Path, t.Image); err != nil {
				return err
			}
		}
		return nil
	})
}
