package player

import "time"

// Mock is a test double for Player.
type Mock struct {
	state     State
	ended     bool
	position  time.Duration
	duration  time.Duration
	volume    float64
	loadErr   error
	loadCalls []string
	seekCalls []time.Duration
	closed    bool
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped, volume: 1}
}

func (m *Mock) Load(locator string) error {
	m.loadCalls = append(m.loadCalls, locator)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.state = Paused
	m.ended = false
	m.position = 0
	return nil
}

func (m *Mock) Play() {
	if m.state == Stopped {
		return
	}
	if m.ended {
		m.position = 0
		m.ended = false
	}
	m.state = Playing
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Paused() bool { return m.state != Playing || m.ended }

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) SetPosition(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
}

func (m *Mock) Duration() (time.Duration, bool) {
	if m.state == Stopped {
		return 0, false
	}
	return m.duration, true
}

func (m *Mock) SetVolume(level float64) { m.volume = level }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) Close() {
	m.closed = true
	m.state = Stopped
}

// Test helpers

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPositionValue(pos time.Duration) { m.position = pos }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

// End simulates the track reaching its end.
func (m *Mock) End() { m.ended = true }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
