package uiutil

import (
	"testing"
	"time"
)

func TestClampIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{-1, 3, 0},
		{1, 3, 1},
		{3, 3, 2},
		{10, 3, 2},
	}
	for _, tc := range tests {
		if got := ClampIndex(tc.i, tc.n); got != tc.want {
			t.Fatalf("ClampIndex(%d, %d) = %d, expected %d", tc.i, tc.n, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Initial Complaint", 40); got != "Initial Complaint" {
		t.Fatalf("expected untouched string, got %q", got)
	}
	if got := Truncate("Initial Complaint", 10); got != "Initial C…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFormatStamp(t *testing.T) {
	at := time.Date(2023, time.June, 20, 9, 30, 0, 0, time.UTC)
	if got := FormatStamp(at); got != "2023-06-20 09:30" {
		t.Fatalf("unexpected stamp: %q", got)
	}
	if got := FormatStamp(time.Time{}); got != "(unknown)" {
		t.Fatalf("expected placeholder for zero time, got %q", got)
	}
}
