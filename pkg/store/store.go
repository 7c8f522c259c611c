// Package store holds the in-memory session state: clients, documents,
// calendar events, tasks, notifications, and billable hours. State lives
// locally for the lifetime of the session, watchers subscribe to emitted
// change messages, and consumers read consistent snapshots.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/taxonomy"
	"tableflip.dev/lawe/pkg/tui/events"
)

// ErrNotFound reports a mutation aimed at an entity that does not exist.
var ErrNotFound = errors.New("store: not found")

// Snapshot exposes a copy of the current state. The returned data should
// be treated as immutable by callers.
type Snapshot struct {
	Clients       []entity.Client
	Documents     []entity.Document
	Events        []entity.Event
	Tasks         []entity.Task
	Notifications []entity.Notification
	Billable      map[int64]float64
}

// ClientByID resolves a client from the snapshot; ok is false when the
// client was removed.
func (s Snapshot) ClientByID(id int64) (entity.Client, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Client{}, false
}

// ClientName returns the client's display name, or a removed marker for
// references that outlived their client.
func (s Snapshot) ClientName(id int64) string {
	if c, ok := s.ClientByID(id); ok {
		return c.Name
	}
	return "(client removed)"
}

// UnreadNotifications counts notifications not yet marked read.
func (s Snapshot) UnreadNotifications() int {
	n := 0
	for _, note := range s.Notifications {
		if !note.Read {
			n++
		}
	}
	return n
}

// Store maintains the session collections and emits typed events on
// mutation. Mutators validate first and leave state untouched on
// rejection. IDs come from per-collection monotonic counters and are
// never reused after deletion.
type Store struct {
	component events.ComponentID

	mu sync.RWMutex

	clients       []entity.Client
	documents     []entity.Document
	events        []entity.Event
	tasks         []entity.Task
	notifications []entity.Notification
	billable      map[int64]float64

	nextClientID       int64
	nextDocumentID     int64
	nextEventID        int64
	nextTaskID         int64
	nextNotificationID int64

	eventCh chan tea.Msg
}

// New creates an empty store that will emit events using the provided
// ComponentID (falls back to "store" if empty).
func New(component events.ComponentID) *Store {
	if component == "" {
		component = events.ComponentID("store")
	}
	return &Store{
		component: component,
		billable:  map[int64]float64{},
		eventCh:   make(chan tea.Msg, 64),
	}
}

// Events exposes the store event channel for Bubble Tea subscriptions.
func (s *Store) Events() <-chan tea.Msg {
	return s.eventCh
}

// Snapshot returns a copy of every collection.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	billable := make(map[int64]float64, len(s.billable))
	for id, hours := range s.billable {
		billable[id] = hours
	}
	return Snapshot{
		Clients:       append([]entity.Client(nil), s.clients...),
		Documents:     append([]entity.Document(nil), s.documents...),
		Events:        append([]entity.Event(nil), s.events...),
		Tasks:         append([]entity.Task(nil), s.tasks...),
		Notifications: append([]entity.Notification(nil), s.notifications...),
		Billable:      billable,
	}
}

// AddClient validates and inserts a new client.
func (s *Store) AddClient(name, email, phone string) (entity.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Client{}, errors.New("store: client name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextClientID++
	client := entity.Client{
		ID:    s.nextClientID,
		Name:  name,
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	s.clients = append(s.clients, client)
	s.pushNotification(fmt.Sprintf("New client added: %s", client.Name))
	s.emit(events.EntityChangeMsg{
		Component: s.component,
		Action:    events.ChangeCreate,
		Kind:      events.KindClient,
		ID:        client.ID,
		Label:     client.Name,
	})
	return client, nil
}

// DeleteClient removes a client and cascades to that client's documents.
// Calendar events keep their reference and render with a removed marker.
// Billable hours for the client are retained until logout.
func (s *Store) DeleteClient(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, c := range s.clients {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("store: client %d: %w", id, ErrNotFound)
	}
	name := s.clients[idx].Name
	s.clients = append(s.clients[:idx], s.clients[idx+1:]...)
	kept := s.documents[:0]
	for _, d := range s.documents {
		if d.ClientID == id {
			continue
		}
		kept = append(kept, d)
	}
	s.documents = kept
	s.emit(events.EntityChangeMsg{
		Component: s.component,
		Action:    events.ChangeDelete,
		Kind:      events.KindClient,
		ID:        id,
		Label:     name,
	})
	return nil
}

// AddDocument validates and files a new document. The category pair must
// exist in the taxonomy; the owning client must exist at filing time.
func (s *Store) AddDocument(doc entity.Document) (entity.Document, error) {
	doc.Title = strings.TrimSpace(doc.Title)
	doc.FileName = strings.TrimSpace(doc.FileName)
	if doc.Title == "" {
		return entity.Document{}, errors.New("store: document title is required")
	}
	if doc.FileName == "" {
		return entity.Document{}, errors.New("store: document file is required")
	}
	if err := taxonomy.Validate(doc.Category, doc.SubCategory); err != nil {
		return entity.Document{}, fmt.Errorf("store: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clientByIDLocked(doc.ClientID); !ok {
		return entity.Document{}, fmt.Errorf("store: client %d: %w", doc.ClientID, ErrNotFound)
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = entity.At(time.Now())
	}
	s.nextDocumentID++
	doc.ID = s.nextDocumentID
	s.documents = append(s.documents, doc)
	s.pushNotification(fmt.Sprintf("Document uploaded: %s", doc.Title))
	s.emit(events.EntityChangeMsg{
		Component: s.component,
		Action:    events.ChangeCreate,
		Kind:      events.KindDocument,
		ID:        doc.ID,
		Label:     doc.Title,
	})
	return doc, nil
}

// AddEvent validates and schedules a calendar event.
func (s *Store) AddEvent(ev entity.Event) (entity.Event, error) {
	ev.Title = strings.TrimSpace(ev.Title)
	if ev.Title == "" {
		return entity.Event{}, errors.New("store: event title is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clientByIDLocked(ev.ClientID); !ok {
		return entity.Event{}, fmt.Errorf("store: client %d: %w", ev.ClientID, ErrNotFound)
	}
	s.nextEventID++
	ev.ID = s.nextEventID
	s.events = append(s.events, ev)
	s.pushNotification(fmt.Sprintf("Event scheduled: %s", ev.Title))
	s.emit(events.EntityChangeMsg{
		Component: s.component,
		Action:    events.ChangeCreate,
		Kind:      events.KindEvent,
		ID:        ev.ID,
		Label:     ev.Title,
	})
	return ev, nil
}

// AddTask validates and inserts a new task, initially incomplete.
func (s *Store) AddTask(title string, due entity.Timestamp) (entity.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entity.Task{}, errors.New("store: task title is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTaskID++
	task := entity.Task{
		ID:      s.nextTaskID,
		Title:   title,
		DueDate: due,
	}
	s.tasks = append(s.tasks, task)
	s.emit(events.EntityChangeMsg{
		Component: s.component,
		Action:    events.ChangeCreate,
		Kind:      events.KindTask,
		ID:        task.ID,
		Label:     task.Title,
	})
	return task, nil
}

// ToggleTask flips a task's completed flag.
func (s *Store) ToggleTask(id int64) (entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Completed = !s.tasks[i].Completed
		task := s.tasks[i]
		s.emit(events.EntityChangeMsg{
			Component: s.component,
			Action:    events.ChangeUpdate,
			Kind:      events.KindTask,
			ID:        task.ID,
			Label:     task.Title,
		})
		return task, nil
	}
	return entity.Task{}, fmt.Errorf("store: task %d: %w", id, ErrNotFound)
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID != id {
			continue
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		s.emit(events.EntityChangeMsg{
			Component: s.component,
			Action:    events.ChangeDelete,
			Kind:      events.KindTask,
			ID:        id,
			Label:     t.Title,
		})
		return nil
	}
	return fmt.Errorf("store: task %d: %w", id, ErrNotFound)
}

// ReorderDocuments moves the document at position from to position to in
// the canonical sequence, shifting everything between.
func (s *Store) ReorderDocuments(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.documents)
	if from < 0 || from >= n {
		return fmt.Errorf("store: reorder from %d out of range [0,%d)", from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("store: reorder to %d out of range [0,%d)", to, n)
	}
	if from == to {
		return nil
	}
	moved := s.documents[from]
	s.documents = append(s.documents[:from], s.documents[from+1:]...)
	s.documents = append(s.documents[:to], append([]entity.Document{moved}, s.documents[to:]...)...)
	s.emit(events.EntityChangeMsg{
		Component: s.component,
		Action:    events.ChangeReorder,
		Kind:      events.KindDocument,
		ID:        moved.ID,
		Label:     moved.Title,
	})
	return nil
}

// AddBillableHours accumulates hours against a client. Hours only grow
// during a session; logout discards them.
func (s *Store) AddBillableHours(clientID int64, hours float64) error {
	if hours <= 0 {
		return errors.New("store: hours must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	client, ok := s.clientByIDLocked(clientID)
	if !ok {
		return fmt.Errorf("store: client %d: %w", clientID, ErrNotFound)
	}
	s.billable[clientID] += hours
	s.emit(events.EntityChangeMsg{
		Component: s.component,
		Action:    events.ChangeUpdate,
		Kind:      events.KindHours,
		ID:        clientID,
		Label:     client.Name,
	})
	return nil
}

// MarkNotificationRead marks a single notification read.
func (s *Store) MarkNotificationRead(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID != id {
			continue
		}
		s.notifications[i].Read = true
		s.emit(events.EntityChangeMsg{
			Component: s.component,
			Action:    events.ChangeUpdate,
			Kind:      events.KindNotification,
			ID:        id,
			Label:     s.notifications[i].Title,
		})
		return nil
	}
	return fmt.Errorf("store: notification %d: %w", id, ErrNotFound)
}

// ClearNotifications drops every notification.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.notifications) == 0 {
		return
	}
	s.notifications = nil
	s.emit(events.EntityChangeMsg{
		Component: s.component,
		Action:    events.ChangeDelete,
		Kind:      events.KindNotification,
	})
}

// DiscardBillable zeroes every accumulated hour. Only the session calls
// this, on logout.
func (s *Store) DiscardBillable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.billable) == 0 {
		return
	}
	s.billable = map[int64]float64{}
	s.emit(events.EntityChangeMsg{
		Component: s.component,
		Action:    events.ChangeDelete,
		Kind:      events.KindHours,
	})
}

func (s *Store) clientByIDLocked(id int64) (entity.Client, bool) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Client{}, false
}

// pushNotification appends an unread notification. Callers hold s.mu.
func (s *Store) pushNotification(title string) {
	s.nextNotificationID++
	s.notifications = append(s.notifications, entity.Notification{
		ID:        s.nextNotificationID,
		Title:     title,
		Timestamp: entity.At(time.Now()),
	})
}

func (s *Store) emit(msg tea.Msg) {
	select {
	case s.eventCh <- msg:
	default:
	}
}
