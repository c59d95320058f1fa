package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	s, err := lc.session(ctx, token)
	if err != nil {
		return false, err
	}
	return !s.expired(lc.ttl, time.Now()), nil
}

// SessionUser returns the id of the user owning the token.
func (lc *LoginChecker) SessionUser(ctx context.Context, token string) (uuid.UUID, error) {
	s, err := lc.session(ctx, token)
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrNotLoggedIn
	}
	if err != nil {
		return uuid.Nil, err
	}
	if s.expired(lc.ttl, time.Now()) {
		return uuid.Nil, ErrNotLoggedIn
	}
	return s.UserID, nil
}

func (lc *LoginChecker) session(ctx context.Context, token string) (session, error) {
	cmd := lc.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		return session{}, err
	}
	return decodeSession(cmd.Val())
}
