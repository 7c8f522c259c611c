package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		month time.Time
		want  int
	}{
		{time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC), 31},
	}
	for _, tc := range tests {
		if got := DaysIn(tc.month); got != tc.want {
			t.Fatalf("DaysIn(%v) = %d, expected %d", tc.month.Month(), got, tc.want)
		}
	}
}

func TestRenderGridShape(t *testing.T) {
	june := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

	out := Render(june, nil, DefaultOptions())
	lines := strings.Split(out, "\n")

	// header plus five week rows: June 2023 starts on a Thursday
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("expected weekday header, got %q", lines[0])
	}
}

func TestRenderZeroMonth(t *testing.T) {
	if out := Render(time.Time{}, nil, DefaultOptions()); out != "" {
		t.Fatalf("expected empty output for zero month, got %q", out)
	}
}
