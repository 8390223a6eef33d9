// Package widgets provides the concrete dashboard panels: the sensor chart,
// the current-status card, the server panel, and the report card. Each
// widget implements the app.Widget interface and receives data exclusively
// through the Elm-architecture update loop.
package widgets

import (
	"strings"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/components"
)

// Common color constants for widget styling.
const (
	// ColorAccent is a soft purple for titles and highlights.
	ColorAccent = "#A78BFA"

	// ColorDim is used for de-emphasized text such as waiting messages.
	ColorDim = "#9CA3AF"

	// ColorError is used for error message text.
	ColorError = "#EF4444"

	// ColorHealthy and ColorUnhealthy mark the server verdict.
	ColorHealthy   = "#4CAF50"
	ColorUnhealthy = "#F44336"

	// ColorWarn marks moderate-risk and borderline values.
	ColorWarn = "#FF9800"
)

// centerMessage renders a centered message in the given area.
func centerMessage(msg string, width, height int) string {
	lines := make([]string, height)
	midY := height / 2
	for i := range lines {
		if i == midY {
			pad := (width - components.VisibleLen(msg)) / 2
			if pad < 0 {
				pad = 0
			}
			lines[i] = strings.Repeat(" ", pad) + msg
		}
	}
	return strings.Join(lines, "\n")
}

// fitLines pads or truncates lines to exactly height rows, each at most
// width visible characters wide.
func fitLines(lines []string, width, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if components.VisibleLen(line) > width {
			lines[i] = components.Truncate(line, width)
		}
	}
	return strings.Join(lines, "\n")
}

// truncLine truncates a single line to at most width visible characters.
func truncLine(line string, width int) string {
	if components.VisibleLen(line) > width {
		return components.Truncate(line, width)
	}
	return line
}
