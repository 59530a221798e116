// Package keymap defines key bindings for the application.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Description string
	Context     string // "global", "playback", "list", "search"
	Action      Action
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, "Quit", "global", ActionQuit},
	{[]string{"tab"}, "Switch panel", "global", ActionSwitchFocus},
	{[]string{"/"}, "Search", "global", ActionSearch},
	{[]string{"v"}, "Voice search", "global", ActionVoiceSearch},
	{[]string{"?"}, "Toggle help", "global", ActionHelp},

	// Playback
	{[]string{" "}, "Play/pause", "playback", ActionPlayPause},
	{[]string{"n", "pgdown"}, "Next track", "playback", ActionNextTrack},
	{[]string{"p", "pgup"}, "Previous track", "playback", ActionPrevTrack},
	{[]string{"right", "l"}, "Seek +5%", "playback", ActionSeekForward},
	{[]string{"left", "h"}, "Seek -5%", "playback", ActionSeekBack},
	{[]string{"+", "="}, "Volume up", "playback", ActionVolumeUp},
	{[]string{"-"}, "Volume down", "playback", ActionVolumeDown},

	// Track lists
	{[]string{"k", "up"}, "Move up", "list", ActionMoveUp},
	{[]string{"j", "down"}, "Move down", "list", ActionMoveDown},
	{[]string{"g", "home"}, "First item", "list", ActionJumpStart},
	{[]string{"G", "end"}, "Last item", "list", ActionJumpEnd},
	{[]string{"enter"}, "Play track", "list", ActionSelect},
	{[]string{"f"}, "Toggle favorite", "list", ActionToggleFavorite},

	// Search field
	{[]string{"enter"}, "Keep filter", "search", ActionSearchAccept},
	{[]string{"esc"}, "Clear filter", "search", ActionSearchCancel},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Help converts bindings to bubbles key bindings for the help footer.
// Only the first key of each binding is shown.
func Help(bindings []Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(helpKey(b.Keys[0]), b.Description),
		))
	}
	return out
}

func helpKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// HelpMap feeds a bubbles help.Model: the short view lists the playback
// keys, the full view lists every context in columns.
type HelpMap struct{}

func (HelpMap) ShortHelp() []key.Binding {
	short := ByContext("playback")
	short = append(short, ByContext("global")...)
	return Help(short)
}

func (HelpMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		Help(ByContext("global")),
		Help(ByContext("playback")),
		Help(ByContext("list")),
		Help(ByContext("search")),
	}
}
