// Package app hosts the bubbletea model that wires the controller to the
// terminal: key and mouse input, the panels, and background commands.
package app

import (
	"time"

	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/speech"
)

// TickMsg drives the progress display while the app runs.
type TickMsg time.Time

// CatalogLoadedMsg carries the result of the startup catalog fetch.
type CatalogLoadedMsg struct {
	Catalog catalog.Catalog
	Err     error
}

// VoiceResultMsg carries the outcome of one voice capture.
type VoiceResultMsg struct {
	Result speech.Result
	Err    error
}

// StderrMsg is a line written to stderr by the audio backend.
type StderrMsg string
