// Package playerbar renders the now-playing bar: track details, the seek
// bar with elapsed and total time, and the volume.
package playerbar

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tunes/internal/controller"
	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/ui"
	"github.com/llehouerou/tunes/internal/ui/render"
	"github.com/llehouerou/tunes/internal/ui/styles"
)

// Height is the total height of the player bar: 3 content rows + border.
const Height = 5

// State holds everything needed to render the player bar.
type State struct {
	Loaded    bool
	Title     string
	Artist    string
	Image     string
	ShowPause bool // the control offers pause, i.e. audio is playing
	Favorite  bool
	Percent   float64
	Elapsed   string
	Total     string
	Volume    float64
}

// NewState reads the current track and progress from the controller.
func NewState(c *controller.Controller) State {
	prog := c.Progress()
	s := State{
		ShowPause: c.Affordance() == controller.ShowPause,
		Percent:   prog.Percent,
		Elapsed:   prog.Elapsed,
		Total:     prog.Total,
		Volume:    c.Volume(),
	}
	if t, ok := c.Current(); ok {
		s.Loaded = true
		s.Title = t.Title
		s.Artist = t.Artist
		s.Image = t.Image
		s.Favorite = c.IsFavorite(t)
	}
	return s
}

// Render returns the player bar for the given outer width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0) // border + padding

	lines := []string{
		renderTrackLine(s, innerWidth),
		renderSeekLine(s, innerWidth),
		renderCoverLine(s, innerWidth),
	}

	return barStyle.Padding(0, 2).Width(max(width-2, 0)).Render(strings.Join(lines, "\n"))
}

func renderTrackLine(s State, width int) string {
	volume := RenderVolume(s.Volume)
	available := max(width-lipgloss.Width(volume)-1, 0)

	if !s.Loaded {
		return render.Row(metaStyle().Render(render.Truncate("No track loaded", available)), volume, width)
	}

	var prefix string
	if s.Favorite {
		prefix = styles.T().S().Favorite.Render(icons.Favorite()) + " "
	}
	available = max(available-lipgloss.Width(prefix), 0)

	title := render.Truncate(s.Title, available)
	left := prefix + styles.TrackTitle(title)

	if s.Artist != "" {
		rest := available - lipgloss.Width(title) - 3
		if rest > 0 {
			left += artistStyle().Render(" · " + render.Truncate(s.Artist, rest))
		}
	}

	return render.Row(left, volume, width)
}

func renderSeekLine(s State, width int) string {
	status := icons.Play()
	if s.ShowPause {
		status = icons.Pause()
	}

	elapsed := progressTimeStyle().Render(s.Elapsed)
	total := progressTimeStyle().Render(s.Total)
	fixed := lipgloss.Width(status) + lipgloss.Width(s.Elapsed) + lipgloss.Width(s.Total) + 6
	barWidth := width - fixed

	if barWidth < ui.MinProgressBarWidth {
		return status + "  " + elapsed + " / " + total
	}

	return status + "  " + elapsed + "  " + SeekBar(s.Percent, barWidth) + "  " + total
}

func renderCoverLine(s State, width int) string {
	if s.Image == "" {
		return ""
	}
	return metaStyle().Render(render.Truncate("cover: "+s.Image, width))
}

// SeekBar renders a bar of the given width filled to percent (0-100).
func SeekBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(percent) {
		percent = 0
	}
	ratio := min(max(percent/100, 0), 1)
	filled := min(int(float64(width)*ratio), width)

	st := styles.T().S()
	return st.BarFill.Render(strings.Repeat("━", filled)) +
		st.BarEmpty.Render(strings.Repeat("─", width-filled))
}
