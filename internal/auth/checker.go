package auth

import (
	"context"

	"github.com/google/uuid"
)

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
	SessionUser(ctx context.Context, token string) (uuid.UUID, error)
}

// LoginTestChecker is an in-memory Checker used by handler tests.
type LoginTestChecker struct {
	LoggedSessions map[string]uuid.UUID
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]uuid.UUID{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	_, ok := c.LoggedSessions[token]
	return ok, nil
}

func (c *LoginTestChecker) SessionUser(_ context.Context, token string) (uuid.UUID, error) {
	userID, ok := c.LoggedSessions[token]
	if !ok {
		return uuid.Nil, ErrNotLoggedIn
	}
	return userID, nil
}
