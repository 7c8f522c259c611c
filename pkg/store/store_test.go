package store

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/tui/events"
)

var seedNow = time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)

func seeded() *Store {
	s := New("test")
	s.Seed(seedNow)
	return s
}

func TestAddClientAssignsMonotonicIDs(t *testing.T) {
	s := seeded()

	c, err := s.AddClient("Acme Corp", "legal@acme.test", "555-0100")
	if err != nil {
		t.Fatalf("AddClient() returned error: %v", err)
	}
	if c.ID != 3 {
		t.Fatalf("AddClient() ID = %d, want 3", c.ID)
	}
	if got := len(s.Snapshot().Clients); got != 3 {
		t.Fatalf("client count = %d, want 3", got)
	}

	if err := s.DeleteClient(c.ID); err != nil {
		t.Fatalf("DeleteClient() returned error: %v", err)
	}
	next, err := s.AddClient("Beta LLC", "", "")
	if err != nil {
		t.Fatalf("AddClient() returned error: %v", err)
	}
	if next.ID != 4 {
		t.Fatalf("ID after delete = %d, want 4 (IDs are never reused)", next.ID)
	}
}

func TestAddClientRequiresName(t *testing.T) {
	s := seeded()
	if _, err := s.AddClient("   ", "a@b.c", ""); err == nil {
		t.Fatal("AddClient() with blank name should fail")
	}
	if got := len(s.Snapshot().Clients); got != 2 {
		t.Fatalf("rejected mutation changed state: client count = %d, want 2", got)
	}
}

func TestDeleteClientCascadesToDocuments(t *testing.T) {
	s := seeded()

	if err := s.DeleteClient(1); err != nil {
		t.Fatalf("DeleteClient() returned error: %v", err)
	}
	snap := s.Snapshot()
	if got := len(snap.Clients); got != 1 {
		t.Fatalf("client count = %d, want 1", got)
	}
	for _, d := range snap.Documents {
		if d.ClientID == 1 {
			t.Fatalf("document %q still owned by deleted client", d.Title)
		}
	}
	if got := len(snap.Documents); got != 2 {
		t.Fatalf("document count = %d, want 2", got)
	}
	// Events are not cascaded, they render with a removed marker.
	if got := len(snap.Events); got != 3 {
		t.Fatalf("event count = %d, want 3", got)
	}
	if got := snap.ClientName(1); got != "(client removed)" {
		t.Fatalf("ClientName(1) = %q, want removed marker", got)
	}
}

func TestDeleteClientNotFound(t *testing.T) {
	s := seeded()
	err := s.DeleteClient(99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteClient(99) error = %v, want ErrNotFound", err)
	}
}

func TestAddDocumentValidation(t *testing.T) {
	s := seeded()
	base := entity.Document{
		Title:       "Brief",
		ClientID:    1,
		Category:    "Court Documents",
		SubCategory: "Motions",
		FileName:    "brief.pdf",
	}

	tests := []struct {
		name   string
		mutate func(d *entity.Document)
	}{
		{"blank title", func(d *entity.Document) { d.Title = " " }},
		{"blank file", func(d *entity.Document) { d.FileName = "" }},
		{"blank sub-category", func(d *entity.Document) { d.SubCategory = "" }},
		{"mismatched pair", func(d *entity.Document) { d.SubCategory = "Emails" }},
		{"unknown category", func(d *entity.Document) { d.Category = "Misc" }},
		{"missing client", func(d *entity.Document) { d.ClientID = 42 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := base
			tc.mutate(&doc)
			if _, err := s.AddDocument(doc); err == nil {
				t.Fatal("AddDocument() should fail")
			}
			if got := len(s.Snapshot().Documents); got != 5 {
				t.Fatalf("rejected mutation changed state: document count = %d, want 5", got)
			}
		})
	}

	doc, err := s.AddDocument(base)
	if err != nil {
		t.Fatalf("AddDocument() returned error: %v", err)
	}
	if doc.ID != 6 {
		t.Fatalf("AddDocument() ID = %d, want 6", doc.ID)
	}
	if doc.CreatedAt.IsZero() {
		t.Fatal("AddDocument() should stamp CreatedAt")
	}
}

func TestAddEventRequiresClient(t *testing.T) {
	s := seeded()
	if _, err := s.AddEvent(entity.Event{Title: "Deposition", ClientID: 42}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AddEvent() error = %v, want ErrNotFound", err)
	}
	ev, err := s.AddEvent(entity.Event{Title: "Deposition", ClientID: 2, Date: entity.At(seedNow)})
	if err != nil {
		t.Fatalf("AddEvent() returned error: %v", err)
	}
	if ev.ID != 4 {
		t.Fatalf("AddEvent() ID = %d, want 4", ev.ID)
	}
}

func TestToggleTaskIsAnInvolution(t *testing.T) {
	s := seeded()

	first, err := s.ToggleTask(1)
	if err != nil {
		t.Fatalf("ToggleTask() returned error: %v", err)
	}
	if !first.Completed {
		t.Fatal("first toggle should complete the task")
	}
	second, err := s.ToggleTask(1)
	if err != nil {
		t.Fatalf("ToggleTask() returned error: %v", err)
	}
	if second.Completed {
		t.Fatal("second toggle should restore the task")
	}
}

func TestTaskNotFound(t *testing.T) {
	s := seeded()
	if _, err := s.ToggleTask(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ToggleTask(99) error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteTask(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteTask(99) error = %v, want ErrNotFound", err)
	}
	if got := len(s.Snapshot().Tasks); got != 3 {
		t.Fatalf("task count = %d, want 3", got)
	}
}

func TestReorderDocuments(t *testing.T) {
	s := seeded()

	if err := s.ReorderDocuments(0, 5); err == nil {
		t.Fatal("ReorderDocuments() past the end should fail")
	}
	if err := s.ReorderDocuments(-1, 0); err == nil {
		t.Fatal("ReorderDocuments() with negative index should fail")
	}
	if err := s.ReorderDocuments(0, 2); err != nil {
		t.Fatalf("ReorderDocuments() returned error: %v", err)
	}
	var order []int64
	for _, d := range s.Snapshot().Documents {
		order = append(order, d.ID)
	}
	want := []int64{2, 3, 1, 4, 5}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestAddBillableHoursAccumulates(t *testing.T) {
	s := seeded()

	if err := s.AddBillableHours(1, 2.5); err != nil {
		t.Fatalf("AddBillableHours() returned error: %v", err)
	}
	if err := s.AddBillableHours(1, 1.5); err != nil {
		t.Fatalf("AddBillableHours() returned error: %v", err)
	}
	if got := s.Snapshot().Billable[1]; got != 4.0 {
		t.Fatalf("billable[1] = %v, want 4.0", got)
	}
	if err := s.AddBillableHours(1, 0); err == nil {
		t.Fatal("AddBillableHours() with zero hours should fail")
	}
	if err := s.AddBillableHours(42, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AddBillableHours() error = %v, want ErrNotFound", err)
	}
}

func TestNotifications(t *testing.T) {
	s := seeded()

	if got := s.Snapshot().UnreadNotifications(); got != 2 {
		t.Fatalf("unread = %d, want 2", got)
	}
	if err := s.MarkNotificationRead(1); err != nil {
		t.Fatalf("MarkNotificationRead() returned error: %v", err)
	}
	if got := s.Snapshot().UnreadNotifications(); got != 1 {
		t.Fatalf("unread after mark = %d, want 1", got)
	}
	if err := s.MarkNotificationRead(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MarkNotificationRead(99) error = %v, want ErrNotFound", err)
	}
	s.ClearNotifications()
	if got := len(s.Snapshot().Notifications); got != 0 {
		t.Fatalf("notifications after clear = %d, want 0", got)
	}
}

func TestMutationsPushNotifications(t *testing.T) {
	s := seeded()
	s.ClearNotifications()

	if _, err := s.AddClient("Acme Corp", "", ""); err != nil {
		t.Fatalf("AddClient() returned error: %v", err)
	}
	notes := s.Snapshot().Notifications
	if len(notes) != 1 {
		t.Fatalf("notification count = %d, want 1", len(notes))
	}
	if notes[0].Read {
		t.Fatal("pushed notification should start unread")
	}
	if notes[0].ID != 4 {
		t.Fatalf("notification ID = %d, want 4 (counter continues past clear)", notes[0].ID)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := seeded()
	snap := s.Snapshot()
	snap.Clients[0].Name = "mutated"
	snap.Billable[1] = 100

	fresh := s.Snapshot()
	if fresh.Clients[0].Name != "John Doe" {
		t.Fatalf("snapshot mutation leaked into store: %q", fresh.Clients[0].Name)
	}
	if fresh.Billable[1] != 0 {
		t.Fatalf("billable mutation leaked into store: %v", fresh.Billable[1])
	}
}

func TestMutationsEmitChangeEvents(t *testing.T) {
	s := seeded()

	if _, err := s.AddClient("Acme Corp", "", ""); err != nil {
		t.Fatalf("AddClient() returned error: %v", err)
	}
	select {
	case msg := <-s.Events():
		change, ok := msg.(events.EntityChangeMsg)
		if !ok {
			t.Fatalf("event type = %T, want EntityChangeMsg", msg)
		}
		if change.Action != events.ChangeCreate || change.Kind != events.KindClient {
			t.Fatalf("event = %s, want create client", change.Describe())
		}
	default:
		t.Fatal("AddClient() emitted no event")
	}
}
