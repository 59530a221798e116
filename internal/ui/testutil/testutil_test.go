package testutil

import (
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello world", "hello world"},
		{"\x1b[31mred\x1b[0m text", "red text"},
		{"\x1b[1;38;2;167;139;250mS\x1b[0m", "S"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripANSI(tt.input); got != tt.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[31m日本\x1b[0m"); got != 4 {
		t.Errorf("MeasureWidth = %d, want 4", got)
	}
}

func TestLineHelpers(t *testing.T) {
	output := "Playlist\n  Song A\n\n  Song B\n\n"

	if !ContainsLine(output, "Song B") {
		t.Error("ContainsLine should find Song B")
	}
	if ContainsLine(output, "Song C") {
		t.Error("ContainsLine should not find Song C")
	}
	if got := FindLine(output, "Song A"); got != "  Song A" {
		t.Errorf("FindLine = %q", got)
	}
	if got := FindLine(output, "missing"); got != "" {
		t.Errorf("FindLine(missing) = %q", got)
	}
	if got := CountLines(output); got != 3 {
		t.Errorf("CountLines = %d, want 3", got)
	}
}
