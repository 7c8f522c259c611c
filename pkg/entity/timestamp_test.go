package entity

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	noon := At(time.Date(2023, time.June, 15, 12, 0, 0, 0, time.Local))

	if !noon.SameDay(time.Date(2023, time.June, 15, 23, 59, 0, 0, time.Local)) {
		t.Fatal("same day with different clock time should match")
	}
	if noon.SameDay(time.Date(2023, time.July, 15, 12, 0, 0, 0, time.Local)) {
		t.Fatal("same day number in another month should not match")
	}
	if noon.SameDay(time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)) {
		t.Fatal("same day in another year should not match")
	}
}

func TestSameMonth(t *testing.T) {
	noon := At(time.Date(2023, time.June, 15, 12, 0, 0, 0, time.Local))

	if !noon.SameMonth(time.Date(2023, time.June, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatal("same month should match regardless of day")
	}
	if noon.SameMonth(time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)) {
		t.Fatal("same month in another year should not match")
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := At(time.Date(2023, time.June, 15, 12, 30, 0, 0, time.UTC))

	b, err := json.Marshal(&ts)
	if err != nil {
		t.Fatalf("Marshal() returned error: %v", err)
	}
	if string(b) != `"2023-06-15T12:30:00Z"` {
		t.Fatalf("Marshal() = %s", b)
	}

	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("round trip = %v, want %v", back, ts)
	}

	var zero Timestamp
	b, err = json.Marshal(&zero)
	if err != nil {
		t.Fatalf("Marshal(zero) returned error: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("Marshal(zero) = %s, want empty string", b)
	}
}
