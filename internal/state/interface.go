// internal/state/interface.go
package state

import "github.com/llehouerou/tunes/internal/catalog"

// Store is a key-value store of named track lists.
// Put overwrites a slot wholesale; Get of an absent slot returns an empty list.
type Store interface {
	Get(slot string) ([]catalog.Track, error)
	Put(slot string, tracks []catalog.Track) error
}

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	Store
	GetVolume() (*VolumeState, error)
	SaveVolume(volume float64) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
