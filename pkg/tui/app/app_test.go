package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/lawe/pkg/auth"
	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/notify"
	"tableflip.dev/lawe/pkg/session"
	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/tui/events"
)

func newTestModel() *Model {
	st := store.New("store")
	st.Seed(time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC))
	a := auth.NewStatic(
		entity.User{ID: 1, Name: "John Doe", Email: "user@example.com"},
		"user@example.com", "password")
	sess := session.New(a, st)
	return New(sess, st, notify.Discard{})
}

func loggedInModel(t *testing.T) *Model {
	t.Helper()
	m := newTestModel()
	user, err := m.session.Login("user@example.com", "password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	m.Update(events.LoginMsg{Component: "login", User: user})
	return m
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

func view(m *Model) string {
	return stripANSI(m.View())
}

func TestLoggedOutRendersSignInForm(t *testing.T) {
	m := newTestModel()

	v := view(m)
	if !strings.Contains(v, "Sign in") {
		t.Fatalf("expected sign in form; view=%q", v)
	}
	if !strings.Contains(v, "Email:") || !strings.Contains(v, "Password:") {
		t.Fatalf("expected credential fields; view=%q", v)
	}
	if strings.Contains(v, "Dashboard") {
		t.Fatalf("tab strip should not render before login; view=%q", v)
	}
}

func TestLoginWithKeyboardOpensSession(t *testing.T) {
	m := newTestModel()

	typeText(m, "user@example.com")
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(m, "password")
	cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command from submit")
	}
	msg, ok := cmd().(events.LoginMsg)
	if !ok {
		t.Fatalf("expected LoginMsg, got %T", cmd())
	}
	press(m, msg)

	if !m.session.LoggedIn() {
		t.Fatalf("expected open session after login")
	}
	v := view(m)
	if !strings.Contains(v, "1 Dashboard") {
		t.Fatalf("expected tab strip after login; view=%q", v)
	}
	if !strings.Contains(v, "Welcome, John Doe") {
		t.Fatalf("expected welcome toast; view=%q", v)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	m := newTestModel()

	typeText(m, "user@example.com")
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(m, "nope")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.session.LoggedIn() {
		t.Fatalf("session should remain closed")
	}
	if v := view(m); !strings.Contains(v, "invalid email or password") {
		t.Fatalf("expected error message; view=%q", v)
	}
}

func TestTabKeysSwitchTabs(t *testing.T) {
	m := loggedInModel(t)

	press(m, tea.KeyPressMsg{Text: "4", Code: '4'})
	if m.tab != TabDocuments {
		t.Fatalf("expected documents tab, got %v", m.tab)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	if m.tab != TabCalendar {
		t.Fatalf("expected calendar tab after tab key, got %v", m.tab)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.tab != TabDocuments {
		t.Fatalf("expected documents tab after shift+tab, got %v", m.tab)
	}
}

func TestHeaderShowsUnreadBadge(t *testing.T) {
	m := loggedInModel(t)

	v := view(m)
	if !strings.Contains(v, "Law-E") {
		t.Fatalf("expected app title; view=%q", v)
	}
	// the seed carries two unread notifications
	if !strings.Contains(v, "2") {
		t.Fatalf("expected unread badge; view=%q", v)
	}
}

func TestNotificationsPanelMarkReadAndClear(t *testing.T) {
	m := loggedInModel(t)

	press(m, tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if !m.notificationsOpen {
		t.Fatalf("expected notifications panel to open")
	}
	v := view(m)
	if !strings.Contains(v, "Notifications") || !strings.Contains(v, "New client added") {
		t.Fatalf("expected notification rows; view=%q", v)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if unread := m.store.Snapshot().UnreadNotifications(); unread != 1 {
		t.Fatalf("expected 1 unread after mark read, got %d", unread)
	}

	press(m, tea.KeyPressMsg{Text: "x", Code: 'x'})
	if n := len(m.store.Snapshot().Notifications); n != 0 {
		t.Fatalf("expected cleared notifications, got %d", n)
	}
	if v := view(m); !strings.Contains(v, "none") {
		t.Fatalf("expected empty placeholder; view=%q", v)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.notificationsOpen {
		t.Fatalf("expected notifications panel to close")
	}
}

func TestHelpOverlayToggle(t *testing.T) {
	m := loggedInModel(t)

	press(m, tea.KeyPressMsg{Text: "?", Code: '?'})
	if !m.helpOpen {
		t.Fatalf("expected help overlay to open")
	}
	if v := view(m); !strings.Contains(v, "toggle this help") {
		t.Fatalf("expected key reference; view=%q", v)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.helpOpen {
		t.Fatalf("expected help overlay to close")
	}
	if v := view(m); !strings.Contains(v, "Overview") {
		t.Fatalf("expected dashboard after closing help; view=%q", v)
	}
}

func TestLogoutClosesSession(t *testing.T) {
	m := loggedInModel(t)

	cmd := press(m, tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatalf("expected logout command")
	}
	msg, ok := cmd().(events.LogoutMsg)
	if !ok {
		t.Fatalf("expected LogoutMsg, got %T", cmd())
	}
	press(m, msg)

	if m.session.LoggedIn() {
		t.Fatalf("expected closed session after logout")
	}
	if v := view(m); !strings.Contains(v, "Sign in") {
		t.Fatalf("expected login form after logout; view=%q", v)
	}
}

func TestStoreChangeRefreshesTabs(t *testing.T) {
	m := loggedInModel(t)

	client, err := m.store.AddClient("Acme Corp", "legal@acme.test", "")
	if err != nil {
		t.Fatalf("add client: %v", err)
	}

	var change events.EntityChangeMsg
	select {
	case msg := <-m.store.Events():
		c, ok := msg.(events.EntityChangeMsg)
		if !ok {
			t.Fatalf("expected EntityChangeMsg, got %T", msg)
		}
		change = c
	default:
		t.Fatalf("expected a change event on the store channel")
	}
	press(m, change)

	press(m, tea.KeyPressMsg{Text: "3", Code: '3'})
	if v := view(m); !strings.Contains(v, client.Name) {
		t.Fatalf("expected new client in clients tab; view=%q", v)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
