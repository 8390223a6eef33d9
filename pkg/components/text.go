package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the terminal cell width of s, ignoring ANSI escape
// sequences and counting wide runes as two cells.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s down to at most maxWidth visible cells. Escape sequences
// before the cut survive; a string already within the width is returned
// unchanged.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// Wrap word-wraps s at width cells and returns the resulting lines. ANSI
// sequences and wide runes are accounted for.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}
