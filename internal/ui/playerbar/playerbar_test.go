package playerbar

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/ui/testutil"
)

func TestSeekBar(t *testing.T) {
	tests := []struct {
		name       string
		percent    float64
		width      int
		wantFilled int
	}{
		{"empty", 0, 10, 0},
		{"half", 50, 10, 5},
		{"full", 100, 10, 10},
		{"over full clamps", 150, 10, 10},
		{"negative clamps", -5, 10, 0},
		{"nan is empty", math.NaN(), 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := testutil.StripANSI(SeekBar(tt.percent, tt.width))
			if got := strings.Count(bar, "━"); got != tt.wantFilled {
				t.Errorf("filled = %d, want %d (%q)", got, tt.wantFilled, bar)
			}
			if lipgloss.Width(bar) != tt.width {
				t.Errorf("width = %d, want %d", lipgloss.Width(bar), tt.width)
			}
		})
	}

	if SeekBar(50, 0) != "" {
		t.Error("zero width bar should be empty")
	}
}

func TestRender_Loaded(t *testing.T) {
	icons.Init("none")

	s := State{
		Loaded:    true,
		Title:     "Song A",
		Artist:    "Artist 1",
		Image:     "/music/a.jpg",
		ShowPause: true,
		Favorite:  true,
		Percent:   25,
		Elapsed:   "0:50",
		Total:     "3:20",
		Volume:    0.8,
	}
	out := testutil.StripANSI(Render(s, 80))

	for _, want := range []string{"Song A", "Artist 1", "0:50", "3:20", "cover: /music/a.jpg", " 80%", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Playing shows the pause affordance.
	if !testutil.ContainsLine(out, "||") {
		t.Errorf("expected pause affordance:\n%s", out)
	}
	if h := lipgloss.Height(out); h != Height {
		t.Errorf("height = %d, want %d", h, Height)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != 80 {
			t.Errorf("line width = %d, want 80: %q", w, line)
		}
	}
}

func TestRender_Empty(t *testing.T) {
	icons.Init("none")

	out := testutil.StripANSI(Render(State{Elapsed: "0:00", Total: "0:00", Volume: 1}, 60))
	if !strings.Contains(out, "No track loaded") {
		t.Errorf("expected placeholder:\n%s", out)
	}
	if !strings.Contains(out, "0:00") {
		t.Errorf("expected zero timers:\n%s", out)
	}
	if !testutil.ContainsLine(out, ">") {
		t.Errorf("expected play affordance:\n%s", out)
	}
}

func TestRender_Narrow(t *testing.T) {
	icons.Init("none")

	s := State{Loaded: true, Title: "A very long song title that will not fit", Elapsed: "1:00", Total: "2:00"}
	out := testutil.StripANSI(Render(s, 24))
	if !strings.Contains(out, "1:00 / 2:00") {
		t.Errorf("narrow bar should fall back to plain times:\n%s", out)
	}
}

func TestRenderVolume(t *testing.T) {
	icons.Init("none")

	tests := []struct {
		volume float64
		want   string
	}{
		{1, "vol 100%"},
		{0.45, "vol  45%"},
		{0, "mute   0%"},
		{math.NaN(), "vol   0%"},
	}
	for _, tt := range tests {
		if got := testutil.StripANSI(RenderVolume(tt.volume)); got != tt.want {
			t.Errorf("RenderVolume(%v) = %q, want %q", tt.volume, got, tt.want)
		}
	}
}
