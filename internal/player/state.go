package player

// State represents the playback state machine.
//
//	Stopped ──load──▶ Paused ◀──pause/end── Playing
//	                    │                      ▲
//	                    └────────play──────────┘
//
// A track reaching its end leaves the state at Playing but Paused() reports
// true until the next Play or SetPosition.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}
