// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionSearch      Action = "search"
	ActionVoiceSearch Action = "voice_search"
	ActionHelp        Action = "help"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionNextTrack   Action = "next_track"
	ActionPrevTrack   Action = "prev_track"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"

	// List actions
	ActionMoveUp         Action = "move_up"
	ActionMoveDown       Action = "move_down"
	ActionJumpStart      Action = "jump_start"
	ActionJumpEnd        Action = "jump_end"
	ActionSelect         Action = "select"          // enter - play
	ActionToggleFavorite Action = "toggle_favorite" // f

	// Search field actions
	ActionSearchAccept Action = "search_accept"
	ActionSearchCancel Action = "search_cancel"
)
