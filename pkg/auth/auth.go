// Package auth defines the authentication collaborator. Implementations
// own the credentials; nothing in the core embeds a password.
package auth

import (
	"errors"
	"strings"
	"sync"

	"tableflip.dev/lawe/pkg/entity"
)

// ErrInvalidCredentials reports a failed login attempt.
var ErrInvalidCredentials = errors.New("auth: invalid email or password")

// Authenticator vouches for users.
type Authenticator interface {
	// Login checks a credential pair and returns the user it belongs to.
	Login(email, password string) (entity.User, error)
	// Register creates an account from the provided fields.
	Register(name, email, password string) (entity.User, error)
}

// Static authenticates exactly one injected credential pair and accepts
// any fully filled-in registration. It stands in for a real identity
// provider during demos and tests.
type Static struct {
	mu       sync.Mutex
	email    string
	password string
	user     entity.User
	nextID   int64
}

// NewStatic builds a Static authenticator that vouches for user when
// the given credentials are presented.
func NewStatic(user entity.User, email, password string) *Static {
	return &Static{
		email:    email,
		password: password,
		user:     user,
		nextID:   user.ID,
	}
}

func (s *Static) Login(email, password string) (entity.User, error) {
	if strings.TrimSpace(email) != s.email || password != s.password {
		return entity.User{}, ErrInvalidCredentials
	}
	return s.user, nil
}

func (s *Static) Register(name, email, password string) (entity.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return entity.User{}, errors.New("auth: name, email, and password are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return entity.User{ID: s.nextID, Name: name, Email: email}, nil
}
