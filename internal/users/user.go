package users

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = fmt.Errorf("user %w", nutrition.ErrNotFound)
	ErrUserExists   = fmt.Errorf("user %w", nutrition.ErrConflict)
	ErrEmailTaken   = fmt.Errorf("email %w", nutrition.ErrConflict)

	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,150}$`)
)

const (
	minPasswordLength = 8
	maxPasswordBytes  = 72
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	IsPrivate bool      `json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the fields other users should not see.
func (u User) Public() User {
	u.Email = ""
	return u
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsPrivate bool   `json:"is_private"`
}

func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	if !usernameRegex.MatchString(r.Username) {
		return &nutrition.ValidationError{
			Field:      "username",
			Constraint: "must be 3-150 letters, digits or . _ -",
		}
	}
	if at := strings.Index(r.Email, "@"); at < 1 || at == len(r.Email)-1 {
		return &nutrition.ValidationError{
			Field:      "email",
			Constraint: "must be a valid email address",
		}
	}
	if len(r.Password) < minPasswordLength {
		return &nutrition.ValidationError{
			Field:      "password",
			Constraint: fmt.Sprintf("must be at least %d characters", minPasswordLength),
		}
	}
	if len(r.Password) > maxPasswordBytes {
		return &nutrition.ValidationError{
			Field:      "password",
			Constraint: fmt.Sprintf("must be at most %d bytes", maxPasswordBytes),
		}
	}
	return nil
}
