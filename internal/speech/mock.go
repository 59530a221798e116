package speech

import "context"

// Mock is a test double for Recognizer.
type Mock struct {
	result Result
	err    error
	calls  int
}

// NewMock creates a mock that hears the given transcripts, best first.
func NewMock(transcripts ...string) *Mock {
	m := &Mock{}
	if len(transcripts) > 0 {
		alts := make([]Alternative, len(transcripts))
		for i, t := range transcripts {
			alts[i] = Alternative{Transcript: t}
		}
		m.result = Result{Alternatives: [][]Alternative{alts}}
	}
	return m
}

func (m *Mock) Listen(ctx context.Context) (Result, error) {
	m.calls++
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if m.err != nil {
		return Result{}, m.err
	}
	return m.result, nil
}

// Test helpers

func (m *Mock) SetError(err error) { m.err = err }

func (m *Mock) Calls() int { return m.calls }

// Verify Mock implements Recognizer at compile time.
var _ Recognizer = (*Mock)(nil)
