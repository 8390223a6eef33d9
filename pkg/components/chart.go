// Package components provides the low-level rendering pieces shared by the
// dashboard widgets: the block-character series chart and ANSI-aware text
// helpers.
package components

import (
	"math"
	"strings"
)

// Eight vertical fill levels per character cell.
var chartBlocks = [8]rune{
	'▁', // ▁
	'▂', // ▂
	'▃', // ▃
	'▄', // ▄
	'▅', // ▅
	'▆', // ▆
	'▇', // ▇
	'█', // █
}

// ChartStyle configures a Chart.
type ChartStyle struct {
	// Color is the hex line color, e.g. "#F44336". Empty renders uncolored.
	Color string

	// MinY/MaxY pin the y-axis. Nil auto-scales to the visible data. The
	// display-transform layer sets both when a series carries axis bounds.
	MinY *float64
	MaxY *float64
}

// Chart renders a numeric series as a column chart built from Unicode block
// characters, one column per sample, over a configurable number of rows.
type Chart struct {
	style ChartStyle
}

// NewChart creates a chart with the given style.
func NewChart(style ChartStyle) *Chart {
	return &Chart{style: style}
}

// Render draws the last `width` samples of values into a width×height block
// of text. An empty series or degenerate area renders as an empty string;
// the caller decides what an empty chart looks like.
func (c *Chart) Render(values []float64, width, height int) string {
	if len(values) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	points := values
	if len(points) > width {
		points = points[len(points)-width:]
	}

	minY, maxY := chartRange(points)
	if c.style.MinY != nil {
		minY = *c.style.MinY
	}
	if c.style.MaxY != nil {
		maxY = *c.style.MaxY
	}

	// Each column fills 0..height*8 eighths from the bottom.
	totalLevels := height * 8
	levels := make([]int, len(points))
	span := maxY - minY
	for i, v := range points {
		if span <= 0 {
			levels[i] = totalLevels / 2
			continue
		}
		normalized := (v - minY) / span
		if normalized < 0 {
			normalized = 0
		}
		if normalized > 1 {
			normalized = 1
		}
		lv := int(math.Round(normalized * float64(totalLevels)))
		if lv == 0 && v > minY {
			lv = 1 // a present sample never renders as blank
		}
		levels[i] = lv
	}

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		// Row 0 is the top of the chart.
		base := (height - 1 - row) * 8
		for _, lv := range levels {
			fill := lv - base
			switch {
			case fill <= 0:
				b.WriteRune(' ')
			case fill >= 8:
				b.WriteRune(chartBlocks[7])
			default:
				b.WriteRune(chartBlocks[fill-1])
			}
		}
		rows[row] = colorize(b.String(), c.style.Color)
	}
	return strings.Join(rows, "\n")
}

// chartRange finds the min and max of a non-empty slice.
func chartRange(values []float64) (minY, maxY float64) {
	minY, maxY = values[0], values[0]
	for _, v := range values[1:] {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	return minY, maxY
}

// colorize wraps s in a true-color foreground escape, if color parses.
func colorize(s, hex string) string {
	fg := Color(hex)
	if fg == "" {
		return s
	}
	return fg + s + Reset()
}
