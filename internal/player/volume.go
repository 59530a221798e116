package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the volume level. The stored level is kept as given;
// what reaches the speaker is clamped to 0.0-1.0.
func (p *Player) SetVolume(level float64) {
	p.volumeLevel = level

	if p.volume != nil {
		speaker.Lock()
		p.volume.Volume = levelToVolume(level)
		p.volume.Silent = level <= 0 || math.IsNaN(level)
		speaker.Unlock()
	}
}

// Volume returns the last level passed to SetVolume.
func (p *Player) Volume() float64 {
	return p.volumeLevel
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep's Volume is a base-2 exponent: 0 is unchanged, -1 is half, -2 a quarter.
func levelToVolume(level float64) float64 {
	if level <= 0 || math.IsNaN(level) {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
