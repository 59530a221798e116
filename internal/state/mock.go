// internal/state/mock.go
package state

import "github.com/llehouerou/tunes/internal/catalog"

// Mock is an in-memory test double for Manager.
type Mock struct {
	slots    map[string][]catalog.Track
	volume   *VolumeState
	putErr   error
	putCalls int
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{slots: make(map[string][]catalog.Track)}
}

func (m *Mock) Get(slot string) ([]catalog.Track, error) {
	return copyTracks(m.slots[slot]), nil
}

func (m *Mock) Put(slot string, tracks []catalog.Track) error {
	m.putCalls++
	if m.putErr != nil {
		return m.putErr
	}
	m.slots[slot] = copyTracks(tracks)
	return nil
}

func (m *Mock) GetVolume() (*VolumeState, error) {
	return m.volume, nil
}

func (m *Mock) SaveVolume(volume float64) error {
	m.volume = &VolumeState{Volume: volume}
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSlot(slot string, tracks []catalog.Track) { m.slots[slot] = copyTracks(tracks) }

func (m *Mock) SetPutError(err error) { m.putErr = err }

func (m *Mock) PutCalls() int { return m.putCalls }

func (m *Mock) IsClosed() bool { return m.closed }

func copyTracks(tracks []catalog.Track) []catalog.Track {
	result := make([]catalog.Track, len(tracks))
	copy(result, tracks)
	return result
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
