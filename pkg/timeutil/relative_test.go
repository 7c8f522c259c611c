package timeutil

import (
	"testing"
	"time"
)

func TestRelative(t *testing.T) {
	now := time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"zero", time.Time{}, ""},
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"days ago", now.Add(-48 * time.Hour), "2d ago"},
		{"weeks ago", now.Add(-15 * 24 * time.Hour), "2w ago"},
		{"future", now.Add(72 * time.Hour), "in 3d"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Relative(now, tc.at); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDueLabel(t *testing.T) {
	now := time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)

	if got := DueLabel(now, now.Add(2*time.Hour)); got != "due today" {
		t.Fatalf("expected due today, got %q", got)
	}
	if got := DueLabel(now, now.Add(-26*time.Hour)); got != "overdue 1d" {
		t.Fatalf("expected overdue 1d, got %q", got)
	}
	if got := DueLabel(now, now.Add(5*24*time.Hour)); got != "due in 5d" {
		t.Fatalf("expected due in 5d, got %q", got)
	}
	if got := DueLabel(now, time.Time{}); got != "" {
		t.Fatalf("expected empty label for zero due date, got %q", got)
	}
}
