package components

import "testing"

func TestVisibleLenIgnoresEscapes(t *testing.T) {
	s := Color("#FF0000") + "abc" + Reset()
	if got := VisibleLen(s); got != 3 {
		t.Errorf("expected width 3, got %d", got)
	}
}

func TestVisibleLenCountsWideRunes(t *testing.T) {
	if got := VisibleLen("体温"); got != 4 {
		t.Errorf("expected width 4 for two CJK runes, got %d", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 5); got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
	if got := Truncate("hi", 5); got != "hi" {
		t.Errorf("short string should pass through, got %q", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("zero width should yield empty, got %q", got)
	}
}

func TestWrapBreaksAtSpaces(t *testing.T) {
	lines := Wrap("stay hydrated today", 8)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %v", lines)
	}
	for _, line := range lines {
		if VisibleLen(line) > 8 {
			t.Errorf("line %q exceeds width 8", line)
		}
	}
}

func TestColorRejectsMalformedHex(t *testing.T) {
	for _, bad := range []string{"", "#12", "zzzzzz", "#12345g"} {
		if got := Color(bad); got != "" {
			t.Errorf("Color(%q) = %q, expected empty", bad, got)
		}
	}
}

func TestBoldAndDimWrap(t *testing.T) {
	if got := Bold("x"); got != "\x1b[1mx\x1b[22m" {
		t.Errorf("unexpected bold sequence %q", got)
	}
	if got := Dim("x"); got != "\x1b[2mx\x1b[22m" {
		t.Errorf("unexpected dim sequence %q", got)
	}
}
