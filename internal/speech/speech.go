// Package speech turns a spoken phrase into text.
package speech

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by a recognizer with no command to run.
var ErrNotConfigured = errors.New("voice search not configured")

// ErrNoSpeech is returned when recognition produced no transcript.
var ErrNoSpeech = errors.New("no speech recognized")

// Alternative is one candidate transcript.
type Alternative struct {
	Transcript string
	Confidence float64
}

// Result holds ranked recognition results. Each entry of Alternatives is
// one recognized segment with its candidates, best first.
type Result struct {
	Alternatives [][]Alternative
}

// Transcript returns the first candidate of the first segment.
func (r Result) Transcript() (string, bool) {
	if len(r.Alternatives) == 0 || len(r.Alternatives[0]) == 0 {
		return "", false
	}
	return r.Alternatives[0][0].Transcript, true
}

// Recognizer captures one utterance and returns its transcription.
type Recognizer interface {
	Listen(ctx context.Context) (Result, error)
}
