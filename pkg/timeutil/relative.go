package timeutil

import (
	"fmt"
	"time"
)

// Relative renders the distance between now and t in a compact,
// human-readable form: "just now", "2h ago", "in 3d".
func Relative(now, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := t.Sub(now)
	past := d < 0
	if past {
		d = -d
	}
	if d < time.Minute {
		return "just now"
	}

	span := formatSpan(d)
	if past {
		return span + " ago"
	}
	return "in " + span
}

// DueLabel describes a task due date relative to now. Overdue dates get
// called out, same-day dates render as "due today".
func DueLabel(now, due time.Time) string {
	if due.IsZero() {
		return ""
	}
	if due.Year() == now.Year() && due.YearDay() == now.YearDay() {
		return "due today"
	}
	if due.Before(now) {
		return "overdue " + formatSpan(now.Sub(due))
	}
	return "due in " + formatSpan(due.Sub(now))
}

func formatSpan(d time.Duration) string {
	switch {
	case d >= 7*24*time.Hour:
		return fmt.Sprintf("%dw", int(d/(7*24*time.Hour)))
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd", int(d/(24*time.Hour)))
	case d >= time.Hour:
		return fmt.Sprintf("%dh", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	}
}
