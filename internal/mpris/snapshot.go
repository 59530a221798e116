// Package mpris exposes the player on the session bus so desktop media keys
// and widgets can control it.
//
// D-Bus calls arrive on their own goroutines. They never touch player state
// directly: reads go through a Snapshot published by the UI loop, and
// controls are forwarded to it as Requests.
package mpris

import (
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"
)

// Command is a control requested over D-Bus.
type Command int

const (
	CmdPlayPause Command = iota
	CmdPlay
	CmdPause
	CmdNext
	CmdPrevious
	CmdSeek        // relative, by Offset
	CmdSetPosition // absolute, to Offset
	CmdSetVolume
)

// Request is a control forwarded to the UI loop.
type Request struct {
	Cmd    Command
	Offset time.Duration
	Volume float64
}

// Sender delivers a request to the UI loop. It must not block for long.
type Sender func(Request)

// Snapshot is the player state visible over D-Bus.
type Snapshot struct {
	Loaded   bool
	Playing  bool
	Title    string
	Artist   string
	Locator  string
	Image    string
	Position time.Duration
	Duration time.Duration
	Volume   float64
}

// board holds the latest snapshot for D-Bus readers.
type board struct {
	mu   sync.RWMutex
	snap Snapshot
}

func (b *board) set(s Snapshot) {
	b.mu.Lock()
	b.snap = s
	b.mu.Unlock()
}

func (b *board) get() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}

// artURL turns an image locator into a URL media widgets can load.
func artURL(image string) string {
	switch {
	case image == "":
		return ""
	case strings.Contains(image, "://"):
		return image
	default:
		return "file://" + image
	}
}

func formatTrackID(locator string) string {
	h := fnv.New64a()
	h.Write([]byte(locator))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
