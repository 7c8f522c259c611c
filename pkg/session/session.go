// Package session gates access to the store behind authentication and
// owns per-session settings.
package session

import (
	"errors"

	"tableflip.dev/lawe/pkg/auth"
	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/store"
)

// ErrLoggedOut reports store access without an authenticated user.
var ErrLoggedOut = errors.New("session: not logged in")

// Session ties an authenticator, the store, and the current user
// together. A fresh Session starts logged out with default settings.
type Session struct {
	auth     auth.Authenticator
	store    *store.Store
	user     *entity.User
	settings entity.Settings
}

// New builds a logged-out session over the given collaborators.
func New(a auth.Authenticator, s *store.Store) *Session {
	return &Session{
		auth:     a,
		store:    s,
		settings: entity.DefaultSettings(),
	}
}

// Login authenticates and, on success, opens the session and applies
// the user's email to the settings.
func (s *Session) Login(email, password string) (entity.User, error) {
	user, err := s.auth.Login(email, password)
	if err != nil {
		return entity.User{}, err
	}
	s.user = &user
	s.settings.Email = user.Email
	return user, nil
}

// Register creates an account and opens the session as that user.
func (s *Session) Register(name, email, password string) (entity.User, error) {
	user, err := s.auth.Register(name, email, password)
	if err != nil {
		return entity.User{}, err
	}
	s.user = &user
	s.settings.Email = user.Email
	return user, nil
}

// Logout closes the session: the user is cleared, settings return to
// defaults, and accumulated billable hours are discarded.
func (s *Session) Logout() {
	s.user = nil
	s.settings = entity.DefaultSettings()
	s.store.DiscardBillable()
}

// LoggedIn reports whether a user is authenticated.
func (s *Session) LoggedIn() bool {
	return s.user != nil
}

// User returns the current user; ok is false when logged out.
func (s *Session) User() (entity.User, bool) {
	if s.user == nil {
		return entity.User{}, false
	}
	return *s.user, true
}

// Store returns the entity store, or an error when logged out.
func (s *Session) Store() (*store.Store, error) {
	if s.user == nil {
		return nil, ErrLoggedOut
	}
	return s.store, nil
}

// Settings returns the current session settings.
func (s *Session) Settings() entity.Settings {
	return s.settings
}

// UpdateSettings replaces the session settings.
func (s *Session) UpdateSettings(settings entity.Settings) {
	s.settings = settings
}
