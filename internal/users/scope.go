package users

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/httperr"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type userFinder interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type sessionChecker interface {
	SessionUser(ctx context.Context, token string) (uuid.UUID, error)
}

// Scope resolves which user a request acts for. The logged user comes from the
// session token, the viewed user from the {username} path variable.
type Scope struct {
	users    userFinder
	sessions sessionChecker
}

func NewScope(users userFinder, sessions sessionChecker) *Scope {
	return &Scope{
		users:    users,
		sessions: sessions,
	}
}

func (s *Scope) SessionUser(r *http.Request) (uuid.UUID, error) {
	token := r.Header.Get(auth.TokenHeader)
	if token == "" {
		return uuid.Nil, httperr.ErrUnauthorized
	}
	userID, err := s.sessions.SessionUser(r.Context(), token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", httperr.ErrUnauthorized, err)
	}
	return userID, nil
}

// PathUser returns the user named in the path. Private users are visible only
// to themselves.
func (s *Scope) PathUser(r *http.Request) (*User, error) {
	username := mux.Vars(r)["username"]
	if username == "" {
		return nil, ErrUserNotFound
	}

	u, err := s.users.GetByUsername(r.Context(), username)
	if err != nil {
		return nil, err
	}
	if !u.IsPrivate {
		return u, nil
	}

	sessionUserID, err := s.SessionUser(r)
	if err != nil {
		return nil, err
	}
	if sessionUserID != u.ID {
		return nil, httperr.ErrForbidden
	}
	return u, nil
}

// TestScope is a fixed scope for handler tests.
type TestScope struct {
	Users   map[string]*User
	Session uuid.UUID
}

func (s *TestScope) SessionUser(_ *http.Request) (uuid.UUID, error) {
	if s.Session == uuid.Nil {
		return uuid.Nil, httperr.ErrUnauthorized
	}
	return s.Session, nil
}

func (s *TestScope) PathUser(r *http.Request) (*User, error) {
	u, ok := s.Users[mux.Vars(r)["username"]]
	if !ok {
		return nil, ErrUserNotFound
	}
	if u.IsPrivate && u.ID != s.Session {
		return nil, httperr.ErrForbidden
	}
	return u, nil
}
