package controller

import (
	"fmt"
	"math"
	"time"
)

// Progress is the position of the current track as shown by the seek bar.
type Progress struct {
	Percent float64 // 0-100; 0 while the duration is unknown
	Elapsed string
	Total   string
}

// Progress reads the engine's current time and duration.
func (c *Controller) Progress() Progress {
	elapsed := c.player.Position().Seconds()
	total := c.durationSeconds()

	percent := elapsed / total * 100
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		percent = 0
	}

	return Progress{
		Percent: percent,
		Elapsed: FormatTime(elapsed),
		Total:   FormatTime(total),
	}
}

// durationSeconds returns NaN while the engine has no duration.
func (c *Controller) durationSeconds() float64 {
	d, ok := c.player.Duration()
	if !ok {
		return math.NaN()
	}
	return d.Seconds()
}

// FormatTime renders seconds as m:ss with unpadded minutes.
// Non-finite and negative inputs render as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	minutes := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// Seek jumps to value percent of the track's duration.
func (c *Controller) Seek(value float64) {
	total := c.durationSeconds()
	if math.IsNaN(total) {
		return
	}
	target := value / 100 * total
	c.player.SetPosition(time.Duration(target * float64(time.Second)))
}

// SetVolume passes v straight to the engine.
func (c *Controller) SetVolume(v float64) {
	c.player.SetVolume(v)
}

// Volume returns the engine's volume.
func (c *Controller) Volume() float64 {
	return c.player.Volume()
}

// Elapsed returns the engine's playback position.
func (c *Controller) Elapsed() time.Duration {
	return c.player.Position()
}

// Duration returns the length of the current track, 0 while unknown.
func (c *Controller) Duration() time.Duration {
	d, ok := c.player.Duration()
	if !ok {
		return 0
	}
	return d
}

// SeekTo jumps to an absolute position, expressed through Seek's percentage.
func (c *Controller) SeekTo(pos time.Duration) {
	total := c.durationSeconds()
	if math.IsNaN(total) || total <= 0 {
		return
	}
	c.Seek(min(max(pos.Seconds()/total*100, 0), 100))
}
