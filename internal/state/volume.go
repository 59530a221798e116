package state

import (
	"database/sql"
	"errors"
)

// VolumeState represents the saved volume state.
type VolumeState struct {
	Volume float64
}

// GetVolume returns the saved volume, or nil if none was saved yet.
func (m *Manager) GetVolume() (*VolumeState, error) {
	var volume float64

	row := m.db.QueryRow(`SELECT volume FROM player_state WHERE id = 1`)
	err := row.Scan(&volume)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved volume is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &VolumeState{Volume: volume}, nil
}

// SaveVolume persists the volume level to the database.
func (m *Manager) SaveVolume(volume float64) error {
	_, err := m.db.Exec(`
		INSERT INTO player_state (id, volume)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume
	`, volume)
	return err
}
