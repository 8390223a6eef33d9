package components

import (
	"strings"
	"testing"
)

func TestRenderEmptySeriesIsEmpty(t *testing.T) {
	c := NewChart(ChartStyle{})
	if got := c.Render(nil, 20, 4); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
	if got := c.Render([]float64{1, 2}, 0, 4); got != "" {
		t.Errorf("expected empty render for zero width, got %q", got)
	}
}

func TestRenderProducesRequestedRows(t *testing.T) {
	c := NewChart(ChartStyle{})
	out := c.Render([]float64{1, 2, 3, 4, 5}, 10, 3)
	rows := strings.Split(out, "\n")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != 5 {
			t.Errorf("row %d: expected 5 columns, got %d", i, n)
		}
	}
}

func TestRenderTakesLastWidthPoints(t *testing.T) {
	c := NewChart(ChartStyle{})
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i)
	}
	out := c.Render(values, 8, 1)
	if n := len([]rune(out)); n != 8 {
		t.Errorf("expected 8 columns, got %d", n)
	}
	// The newest (largest) sample is rightmost and must render full height.
	last := []rune(out)[7]
	if last != '█' {
		t.Errorf("expected rightmost column full, got %q", last)
	}
}

func TestRenderFlatSeriesSitsMidHeight(t *testing.T) {
	c := NewChart(ChartStyle{})
	out := c.Render([]float64{7, 7, 7}, 3, 2)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// A zero-span series fills exactly half the chart: bottom row full,
	// top row blank.
	if strings.TrimSpace(rows[0]) != "" {
		t.Errorf("expected blank top row, got %q", rows[0])
	}
	if rows[1] != "███" {
		t.Errorf("expected full bottom row, got %q", rows[1])
	}
}

func TestFixedBoundsClampOutliers(t *testing.T) {
	lo, hi := 0.0, 10.0
	c := NewChart(ChartStyle{MinY: &lo, MaxY: &hi})
	out := c.Render([]float64{-5, 15}, 2, 1)
	runes := []rune(out)
	if runes[0] != ' ' {
		t.Errorf("below-range sample should render empty, got %q", runes[0])
	}
	if runes[1] != '█' {
		t.Errorf("above-range sample should render full, got %q", runes[1])
	}
}

func TestColorWrapsOutput(t *testing.T) {
	c := NewChart(ChartStyle{Color: "#FF0000"})
	out := c.Render([]float64{1, 2}, 2, 1)
	if !strings.HasPrefix(out, "\x1b[38;2;255;0;0m") {
		t.Errorf("expected true-color prefix, got %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Errorf("expected reset suffix, got %q", out)
	}
	if VisibleLen(out) != 2 {
		t.Errorf("expected visible width 2, got %d", VisibleLen(out))
	}
}
