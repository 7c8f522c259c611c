// Package views derives presentation data from store snapshots. Every
// function is pure: it reads a snapshot and returns fresh values, so
// callers can recompute on each change event without bookkeeping.
package views

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/store"
)

// SortKey selects the document ordering.
type SortKey string

const (
	SortTitle    SortKey = "title"
	SortClient   SortKey = "client"
	SortCategory SortKey = "category"
	SortDate     SortKey = "date"
)

// SortKeys returns the supported orderings in display order.
func SortKeys() []SortKey {
	return []SortKey{SortTitle, SortClient, SortCategory, SortDate}
}

// ParseSortKey converts a string to a SortKey or returns an error for
// unknown values. Empty input defaults to title.
func ParseSortKey(raw string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	if k == "" {
		return SortTitle, nil
	}
	for _, candidate := range SortKeys() {
		if candidate == k {
			return candidate, nil
		}
	}
	return SortTitle, fmt.Errorf("views: unknown sort key %q", raw)
}

// FilterDocuments keeps documents whose title or owning client name
// contains term, case-insensitively. When full is set the match also
// covers category and sub-category. An empty term passes everything
// through unchanged.
func FilterDocuments(snap store.Snapshot, term string, full bool) []entity.Document {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]entity.Document(nil), snap.Documents...)
	}
	var out []entity.Document
	for _, d := range snap.Documents {
		fields := []string{d.Title, snap.ClientName(d.ClientID)}
		if full {
			fields = append(fields, d.Category, d.SubCategory)
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// FilterByTags keeps documents whose category or sub-category is in
// the selected set. An empty selection passes everything through.
func FilterByTags(docs []entity.Document, selected []string) []entity.Document {
	if len(selected) == 0 {
		return append([]entity.Document(nil), docs...)
	}
	want := make(map[string]struct{}, len(selected))
	for _, tag := range selected {
		want[strings.ToLower(tag)] = struct{}{}
	}
	var out []entity.Document
	for _, d := range docs {
		if _, ok := want[strings.ToLower(d.Category)]; ok {
			out = append(out, d)
			continue
		}
		if _, ok := want[strings.ToLower(d.SubCategory)]; ok {
			out = append(out, d)
		}
	}
	return out
}

// SortDocuments returns docs ordered by key: title, client name, and
// category sort ascending, date sorts newest first. The sort is stable
// with ascending ID as the tie break, so equal keys order
// deterministically. The input slice is not modified.
func SortDocuments(snap store.Snapshot, docs []entity.Document, key SortKey) []entity.Document {
	out := append([]entity.Document(nil), docs...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var cmp int
		switch key {
		case SortClient:
			cmp = strings.Compare(
				strings.ToLower(snap.ClientName(a.ClientID)),
				strings.ToLower(snap.ClientName(b.ClientID)),
			)
		case SortCategory:
			cmp = strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
		case SortDate:
			switch {
			case a.CreatedAt.After(b.CreatedAt.Time):
				cmp = -1
			case b.CreatedAt.After(a.CreatedAt.Time):
				cmp = 1
			}
		default:
			cmp = strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
		if cmp != 0 {
			return cmp < 0
		}
		return a.ID < b.ID
	})
	return out
}

// CategoryCount is one bar of the category distribution.
type CategoryCount struct {
	Category string
	Count    int
}

// GroupByCategory counts documents per category, ordered by first
// encounter in the input.
func GroupByCategory(docs []entity.Document) []CategoryCount {
	index := map[string]int{}
	var out []CategoryCount
	for _, d := range docs {
		if i, ok := index[d.Category]; ok {
			out[i].Count++
			continue
		}
		index[d.Category] = len(out)
		out = append(out, CategoryCount{Category: d.Category, Count: 1})
	}
	return out
}

// ClientCount pairs a client with its document count and billable hours.
type ClientCount struct {
	Client    entity.Client
	Documents int
	Hours     float64
}

// CountPerClient reports document counts and billable hours for every
// client, zero counts included, in client order.
func CountPerClient(snap store.Snapshot) []ClientCount {
	out := make([]ClientCount, 0, len(snap.Clients))
	for _, c := range snap.Clients {
		count := 0
		for _, d := range snap.Documents {
			if d.ClientID == c.ID {
				count++
			}
		}
		out = append(out, ClientCount{
			Client:    c,
			Documents: count,
			Hours:     snap.Billable[c.ID],
		})
	}
	return out
}

// ActivityPoint is one document-created event on the activity timeline.
type ActivityPoint struct {
	Date  entity.Timestamp
	Title string
	Count int
}

// ActivitySeries produces one point per document with a count of one,
// ordered by creation date ascending with ID as the tie break. Any
// aggregation (running totals, per-day buckets) is left to the caller.
func ActivitySeries(docs []entity.Document) []ActivityPoint {
	ordered := append([]entity.Document(nil), docs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt.Time) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt.Time)
		}
		return ordered[i].ID < ordered[j].ID
	})
	out := make([]ActivityPoint, 0, len(ordered))
	for _, d := range ordered {
		out = append(out, ActivityPoint{
			Date:  d.CreatedAt,
			Title: d.Title,
			Count: 1,
		})
	}
	return out
}

// TotalBillableHours sums hours across all clients.
func TotalBillableHours(snap store.Snapshot) float64 {
	total := 0.0
	for _, hours := range snap.Billable {
		total += hours
	}
	return total
}

// RecentDocuments returns the n newest documents, newest first.
func RecentDocuments(snap store.Snapshot, n int) []entity.Document {
	out := SortDocuments(snap, snap.Documents, SortDate)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// EventsOn returns the calendar events falling on the given day.
func EventsOn(snap store.Snapshot, day entity.Timestamp) []entity.Event {
	var out []entity.Event
	for _, ev := range snap.Events {
		if ev.Date.SameDay(day.Time) {
			out = append(out, ev)
		}
	}
	return out
}
