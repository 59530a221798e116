package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Command runs an external speech-to-text program. Every non-empty line it
// prints is a candidate transcript of a single segment, best first.
type Command struct {
	Name string
	Args []string
}

// NewCommand creates a recognizer for the given program.
func NewCommand(name string, args ...string) *Command {
	return &Command{Name: name, Args: args}
}

// Listen runs the command to completion and parses its output.
func (c *Command) Listen(ctx context.Context) (Result, error) {
	if c == nil || c.Name == "" {
		return Result{}, ErrNotConfigured
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return Result{}, fmt.Errorf("%s: %w: %s", c.Name, err, msg)
		}
		return Result{}, fmt.Errorf("%s: %w", c.Name, err)
	}

	return parse(stdout.String())
}

// parse turns one-transcript-per-line output into a Result.
func parse(out string) (Result, error) {
	var alts []Alternative
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		alts = append(alts, Alternative{Transcript: line})
	}
	if err := sc.Err(); err != nil {
		return Result{}, err
	}
	if len(alts) == 0 {
		return Result{}, ErrNoSpeech
	}
	return Result{Alternatives: [][]Alternative{alts}}, nil
}

// Verify Command implements Recognizer at compile time.
var _ Recognizer = (*Command)(nil)
