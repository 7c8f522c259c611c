package uiutil

import (
	"strings"
	"time"
)

// ClampIndex keeps a cursor inside [0, n) for a list of n rows.
func ClampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Truncate shortens s to at most width runes, appending an ellipsis when
// anything was cut. Widths below 2 return the bare prefix.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width < 2 {
		return string(runes[:width])
	}
	return strings.TrimRight(string(runes[:width-1]), " ") + "…"
}

// FormatStamp renders a compact timestamp for list rows and panel lines.
func FormatStamp(t time.Time) string {
	if t.IsZero() {
		return "(unknown)"
	}
	return t.Format("2006-01-02 15:04")
}
