package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Stop stops playback and releases the decoder.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()
	p.generation.Add(1)

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.ended.Store(false)
	p.state = Stopped
}

// Close stops playback. The player can still load a new track afterwards.
func (p *Player) Close() {
	p.Stop()
}

// Play starts or resumes playback. After the track ended it restarts from 0.
func (p *Player) Play() {
	if p.state == Stopped || p.ctrl == nil {
		return
	}
	if p.ended.Load() {
		p.rewind()
		p.enqueue()
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Paused reports whether audio is not currently advancing.
func (p *Player) Paused() bool {
	return p.state != Playing || p.ended.Load()
}

// State returns the current state.
func (p *Player) State() State { return p.state }

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the length of the loaded track.
func (p *Player) Duration() (time.Duration, bool) {
	if p.streamer == nil {
		return 0, false
	}
	return p.format.SampleRate.D(p.streamer.Len()), true
}

// SetPosition jumps to pos, clamped to the track bounds.
// Jumping after the track ended re-arms it, keeping the paused state.
func (p *Player) SetPosition(pos time.Duration) {
	if p.streamer == nil || p.state == Stopped {
		return
	}

	target := p.format.SampleRate.N(pos)
	target = max(target, 0)
	target = min(target, p.streamer.Len())

	if p.ended.Load() {
		_ = p.seek(target)
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
		p.state = Paused
		p.enqueue()
		return
	}

	_ = p.seek(target)
}

func (p *Player) rewind() {
	_ = p.seek(0)
}

func (p *Player) seek(sample int) error {
	speaker.Lock()
	defer speaker.Unlock()
	return p.streamer.Seek(sample)
}
