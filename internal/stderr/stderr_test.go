//go:build !windows

package stderr

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestForward(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	out := make(chan string, 10)
	done := make(chan struct{})
	go func() {
		forward(r, out)
		close(done)
	}()

	if _, err := w.WriteString("ALSA lib pcm.c: underrun\n\n   \nsecond line\n"); err != nil {
		t.Fatal(err)
	}
	w.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("forward did not return after the pipe closed")
	}

	var got []string
	for len(out) > 0 {
		got = append(got, <-out)
	}
	want := []string{"ALSA lib pcm.c: underrun", "second line"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestForward_DropsWhenFull(t *testing.T) {
	out := make(chan string, 1)
	forward(strings.NewReader("one\ntwo\nthree\n"), out)

	if got := <-out; got != "one" {
		t.Errorf("kept %q, want the first line", got)
	}
	if len(out) != 0 {
		t.Errorf("%d extra lines queued", len(out))
	}
}

// Lines still buffered in the forwarder when Stop runs must not be sent on
// a closed channel.
func TestStopAfterBurst(t *testing.T) {
	for range 50 {
		if err := Start(); err != nil {
			t.Skipf("stderr capture unavailable: %v", err)
		}
		for range 200 {
			_, _ = os.Stderr.WriteString("ALSA lib pcm.c: underrun occurred\n")
		}
		Stop()

		// Messages is closed and fully drained of what was forwarded.
		timeout := time.After(2 * time.Second)
	drain:
		for {
			select {
			case _, ok := <-Messages:
				if !ok {
					break drain
				}
			case <-timeout:
				t.Fatal("Messages was not closed by Stop")
			}
		}
	}

	// A later Start installs a usable channel again.
	if err := Start(); err != nil {
		t.Fatal(err)
	}
	_, _ = os.Stderr.WriteString("after restart\n")
	select {
	case line := <-Messages:
		if line != "after restart" {
			t.Errorf("line = %q", line)
		}
	case <-time.After(2 * time.Second):
		t.Error("no line after restart")
	}
	Stop()
}
