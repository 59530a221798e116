//go:build !windows

// Package stderr redirects file descriptor 2 into a channel so that
// messages printed by the audio backend (ALSA through oto) reach the status
// line instead of scribbling over the terminal UI.
package stderr

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// Messages receives captured lines. Stop closes it once the last line has
// been forwarded; a later Start installs a fresh channel.
var Messages = make(chan string, 100)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	forwarded  chan struct{} // closed when forward returns
	started    bool
	closed     bool
)

// Start redirects stderr into Messages. Call it before the speaker is
// initialized. On error nothing is redirected and output keeps going to
// the terminal.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	if closed {
		Messages = make(chan string, 100)
		closed = false
	}
	pipeRead = r
	pipeWrite = w
	forwarded = make(chan struct{})
	started = true

	go func(out chan<- string, done chan<- struct{}) {
		defer close(done)
		forward(r, out)
	}(Messages, forwarded)
	return nil
}

// forward copies non-blank lines into out, dropping them when out is full.
func forward(r io.Reader, out chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case out <- line:
		default:
		}
	}
}

// WriteOriginal writes to the terminal's stderr even while capturing.
func WriteOriginal(msg string) {
	if started && origStderr > 0 {
		_, _ = unix.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr, waits for the forwarder to finish and
// closes Messages.
func Stop() {
	if !started {
		return
	}

	_ = unix.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = unix.Close(origStderr)

	pipeWrite.Close()
	// Closing the read end unblocks the scanner; lines it already buffered
	// are still sent, so Messages stays open until the forwarder is gone.
	pipeRead.Close()
	<-forwarded

	close(Messages)
	closed = true
	started = false
}
