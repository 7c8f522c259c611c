package clients

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/tui/events"
)

func seededModel() (*Model, *store.Store) {
	st := store.New("store")
	st.Seed(time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC))
	return NewModel(st), st
}

func press(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, text string) {
	for _, r := range text {
		press(m, tea.KeyPressMsg{Text: string(r), Code: r})
	}
}

func TestAddClientThroughForm(t *testing.T) {
	m, st := seededModel()

	press(m, tea.KeyPressMsg{Text: "a", Code: 'a'})
	if !m.Editing() {
		t.Fatalf("expected add form to capture keys")
	}
	typeText(m, "Acme Corp")
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(m, "legal@acme.test")
	cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a toast after adding")
	}
	if _, ok := cmd().(events.ToastMsg); !ok {
		t.Fatalf("expected ToastMsg, got %T", cmd())
	}

	clients := st.Snapshot().Clients
	if len(clients) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(clients))
	}
	added := clients[len(clients)-1]
	if added.Name != "Acme Corp" || added.ID != 3 {
		t.Fatalf("unexpected client: %+v", added)
	}
}

func TestAddClientRequiresName(t *testing.T) {
	m, st := seededModel()

	press(m, tea.KeyPressMsg{Text: "a", Code: 'a'})
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.errorMsg == "" {
		t.Fatalf("expected a validation error")
	}
	if n := len(st.Snapshot().Clients); n != 2 {
		t.Fatalf("expected no client added, got %d", n)
	}
	if !m.Editing() {
		t.Fatalf("expected the form to stay open on error")
	}
}

func TestDeleteClientCascades(t *testing.T) {
	m, st := seededModel()

	cmd := press(m, tea.KeyPressMsg{Text: "d", Code: 'd'})
	if cmd == nil {
		t.Fatalf("expected a toast after delete")
	}

	snap := st.Snapshot()
	if len(snap.Clients) != 1 || snap.Clients[0].ID != 2 {
		t.Fatalf("expected only client 2 left, got %+v", snap.Clients)
	}
	for _, d := range snap.Documents {
		if d.ClientID == 1 {
			t.Fatalf("expected documents of client 1 removed, found %+v", d)
		}
	}
}

func TestLogHoursForSelectedClient(t *testing.T) {
	m, st := seededModel()

	press(m, tea.KeyPressMsg{Text: "b", Code: 'b'})
	if !m.Editing() {
		t.Fatalf("expected hours form to capture keys")
	}
	typeText(m, "2.5")
	cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a toast after logging")
	}

	if hours := st.Snapshot().Billable[1]; hours != 2.5 {
		t.Fatalf("expected 2.5 hours for client 1, got %v", hours)
	}
}

func TestLogHoursRejectsNonNumeric(t *testing.T) {
	m, _ := seededModel()

	press(m, tea.KeyPressMsg{Text: "b", Code: 'b'})
	typeText(m, "lots")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if !strings.Contains(m.errorMsg, "number") {
		t.Fatalf("expected numeric validation error, got %q", m.errorMsg)
	}
}
