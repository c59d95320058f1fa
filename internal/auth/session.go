package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTTL = 24 * 7 * time.Hour
	// TokenHeader carries the session token on authenticated requests.
	TokenHeader = "X-FITTRACK-TOKEN"

	sessionKeyPrefix = "fittrack-session||"
	tokensSetKey     = "fittrack-sessions"
	tokenLength      = 35
)

var (
	ErrWrongPassword = errors.New("wrong credentials")
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrMalformed     = errors.New("malformed session")
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// session is stored in redis as "<created at unix>|<user id>".
type session struct {
	CreatedAt time.Time
	UserID    uuid.UUID
}

func (s session) encode() string {
	return fmt.Sprintf("%d|%s", s.CreatedAt.Unix(), s.UserID)
}

func (s session) expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.CreatedAt) > ttl
}

func decodeSession(val string) (session, error) {
	createdAtStr, userIDStr, found := strings.Cut(val, "|")
	if !found {
		return session{}, ErrMalformed
	}

	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return session{}, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return session{}, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	return session{
		CreatedAt: time.Unix(createdAtUnix, 0),
		UserID:    userID,
	}, nil
}
