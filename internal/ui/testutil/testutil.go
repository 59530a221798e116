// Package testutil has helpers for asserting on rendered views.
package testutil

import (
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sgr = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes SGR styling so views can be compared as plain text.
func StripANSI(s string) string {
	return sgr.ReplaceAllString(s, "")
}

// MeasureWidth is the cell width of s once styling is removed.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// FindLine returns the first line of output containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// ContainsLine reports whether some line of output contains substr.
func ContainsLine(output, substr string) bool {
	return slices.ContainsFunc(strings.Split(output, "\n"), func(line string) bool {
		return strings.Contains(line, substr)
	})
}

// CountLines counts lines that are not blank.
func CountLines(output string) int {
	n := 0
	for line := range strings.SplitSeq(output, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
