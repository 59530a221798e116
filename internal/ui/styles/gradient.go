package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for ANSI palette colors, which have no RGB value to blend.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// TrackTitle renders title in bold, fading from the theme's primary to its
// secondary color one grapheme at a time.
func TrackTitle(title string) string {
	t := T()
	return Gradient(title, t.Primary, t.Secondary)
}

// Gradient colors each grapheme of text along an HCL ramp between from and to.
func Gradient(text string, from, to lipgloss.Color) string {
	var graphemes []string
	for g := uniseg.NewGraphemes(text); g.Next(); {
		graphemes = append(graphemes, g.Str())
	}
	switch len(graphemes) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range ramp(len(graphemes), from, to) {
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Hex())).
			Render(graphemes[i]))
	}
	return b.String()
}

func ramp(n int, from, to lipgloss.Color) []colorful.Color {
	a, z := rgb(from), rgb(to)
	if n < 2 {
		return []colorful.Color{a}
	}
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = a.BlendHcl(z, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func rgb(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return neutral
}
