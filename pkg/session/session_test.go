package session

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/lawe/pkg/auth"
	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/store"
)

func demoSession() *Session {
	a := auth.NewStatic(
		entity.User{ID: 1, Name: "John Doe", Email: "user@example.com"},
		"user@example.com",
		"password",
	)
	s := store.New("test")
	s.Seed(time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC))
	return New(a, s)
}

func TestLoginGatesTheStore(t *testing.T) {
	sess := demoSession()

	if sess.LoggedIn() {
		t.Fatal("fresh session should start logged out")
	}
	if _, err := sess.Store(); !errors.Is(err, ErrLoggedOut) {
		t.Fatalf("Store() while logged out = %v, want ErrLoggedOut", err)
	}

	if _, err := sess.Login("user@example.com", "nope"); err == nil {
		t.Fatal("bad credentials should fail")
	}
	if sess.LoggedIn() {
		t.Fatal("failed login should leave the session closed")
	}

	user, err := sess.Login("user@example.com", "password")
	if err != nil {
		t.Fatalf("Login() returned error: %v", err)
	}
	if user.Name != "John Doe" {
		t.Fatalf("Login() user = %+v", user)
	}
	if _, err := sess.Store(); err != nil {
		t.Fatalf("Store() after login returned error: %v", err)
	}
	if got := sess.Settings().Email; got != "user@example.com" {
		t.Fatalf("settings email = %q, want user email applied", got)
	}
}

func TestLogoutResetsSettingsAndHours(t *testing.T) {
	sess := demoSession()
	if _, err := sess.Login("user@example.com", "password"); err != nil {
		t.Fatalf("Login() returned error: %v", err)
	}

	st, err := sess.Store()
	if err != nil {
		t.Fatalf("Store() returned error: %v", err)
	}
	if err := st.AddBillableHours(1, 4.5); err != nil {
		t.Fatalf("AddBillableHours() returned error: %v", err)
	}
	settings := sess.Settings()
	settings.Theme = "dark"
	settings.Notifications = false
	sess.UpdateSettings(settings)

	sess.Logout()

	if sess.LoggedIn() {
		t.Fatal("Logout() should close the session")
	}
	if got := sess.Settings(); got != entity.DefaultSettings() {
		t.Fatalf("settings after logout = %+v, want defaults", got)
	}
	if got := st.Snapshot().Billable[1]; got != 0 {
		t.Fatalf("billable hours survived logout: %v", got)
	}
	// Entities are session-scoped but survive logout within the process.
	if got := len(st.Snapshot().Clients); got != 2 {
		t.Fatalf("client count after logout = %d, want 2", got)
	}
}

func TestRegisterOpensSession(t *testing.T) {
	sess := demoSession()
	user, err := sess.Register("Ada Lovelace", "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("Register() returned error: %v", err)
	}
	if !sess.LoggedIn() {
		t.Fatal("Register() should open the session")
	}
	if got, _ := sess.User(); got != user {
		t.Fatalf("User() = %+v, want %+v", got, user)
	}
}
