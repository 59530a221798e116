package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean ascii", "Song A", "Song A"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline dropped", "line\nbreak", "linebreak"},
		{"escape dropped", "bad\x1b[31mred", "bad[31mred"},
		{"nbsp to space", "a\u00a0b", "a b"},
		{"invalid utf8 dropped", "ok\x80ok", "okok"},
		{"unicode kept", "日本語", "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 6, "hello…"},
		{"wide chars", "日本語のうた", 5, "日本…"},
		{"zero width", "hello", 0, ""},
		{"negative width", "hello", -3, ""},
		{"sanitized first", "a\nbcdef", 3, "ab…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if tt.maxWidth > 0 && lipgloss.Width(got) > tt.maxWidth {
				t.Errorf("Truncate(%q, %d) width = %d", tt.input, tt.maxWidth, lipgloss.Width(got))
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, input := range []string{"", "short", "a much longer title than fits", "日本語のうたです"} {
		got := TruncateAndPad(input, 10)
		if w := lipgloss.Width(got); w != 10 {
			t.Errorf("TruncateAndPad(%q, 10) width = %d, want 10", input, w)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if lipgloss.Width(got) != 20 {
		t.Errorf("Row width = %d, want 20", lipgloss.Width(got))
	}
	if !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Errorf("Row = %q", got)
	}

	// Too narrow still keeps a single space gap.
	if got := Row("left", "right", 3); got != "left right" {
		t.Errorf("narrow Row = %q", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q", got)
	}
}
