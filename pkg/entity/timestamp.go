package entity

import (
	"encoding/json"
	"time"
)

// Timestamp wraps time.Time with calendar-granularity comparisons and
// RFC 3339 JSON round-tripping. Dates on documents, events, and tasks
// all use it; the zero value marshals as an empty string so optional
// dates stay optional on the wire.
type Timestamp struct {
	time.Time
}

// At wraps a time.Time for use in literals and seeds.
func At(v time.Time) Timestamp {
	return Timestamp{Time: v}
}

// SameDay reports whether t and then fall on the same local calendar day.
func (t Timestamp) SameDay(then time.Time) bool {
	y1, m1, d1 := t.Local().Date()
	y2, m2, d2 := then.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SameMonth reports whether t and then fall in the same local month.
func (t Timestamp) SameMonth(then time.Time) bool {
	y1, m1, _ := t.Local().Date()
	y2, m2, _ := then.Local().Date()
	return y1 == y2 && m1 == m2
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// MarshalJSON emits RFC 3339 in UTC, or "" for the zero value.
func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts RFC 3339 strings.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
