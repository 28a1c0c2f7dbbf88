// Package session replaces ambient auth state with an explicit object that is
// opened per caller, handed to every use case, and closed when done.
package session

import (
	"context"
	"sync"

	"github.com/depanneo/booking-platform/shared/apperrors"
	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/status"
)

// User is the authenticated account as reported by the auth collaborator
type User struct {
	ID   models.ID   `json:"_id"`
	Name string      `json:"name"`
	Role status.Role `json:"role"`
}

// Session holds the bearer token and the user it belongs to
type Session struct {
	mu     sync.RWMutex
	token  string
	user   User
	closed bool
}

// Open starts a session for an already authenticated user
func Open(token string, user User) (*Session, error) {
	if token == "" {
		return nil, &apperrors.AuthorizationError{Message: "Session expirée, veuillez vous reconnecter."}
	}
	if user.ID.IsZero() || !user.Role.IsValid() {
		return nil, &apperrors.AuthorizationError{Message: "Utilisateur inconnu."}
	}
	return &Session{token: token, user: user}, nil
}

// Token returns the bearer token, or an error once the session is closed
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", &apperrors.AuthorizationError{Message: "Session expirée, veuillez vous reconnecter."}
	}
	return s.token, nil
}

// User returns the session user
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Role returns the session user's role
func (s *Session) Role() status.Role {
	return s.User().Role
}

// RequireRole fails with an AuthorizationError unless the session is open and
// its user holds one of roles. This gates actions in the UI; the marketplace
// still enforces authority on its side.
func (s *Session) RequireRole(roles ...status.Role) error {
	if s == nil {
		return &apperrors.AuthorizationError{Message: "Veuillez vous connecter."}
	}
	if _, err := s.Token(); err != nil {
		return err
	}
	role := s.Role()
	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	return &apperrors.AuthorizationError{Message: "Action non autorisée pour ce compte."}
}

// Close tears the session down; subsequent Token calls fail
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.token = ""
}

type contextKey string

const sessionKey contextKey = "session"

// WithSession stores the request-scoped session in ctx
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext extracts the request-scoped session, or nil
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey).(*Session); ok {
		return s
	}
	return nil
}
