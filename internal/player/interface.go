package player

import "time"

// Interface is the media engine surface the controller drives.
type Interface interface {
	Load(locator string) error
	Play()
	Pause()
	Paused() bool
	State() State
	Position() time.Duration
	SetPosition(pos time.Duration)
	// Duration reports false while no track is loaded.
	Duration() (time.Duration, bool)
	SetVolume(level float64)
	Volume() float64
	Close()
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
