package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const emailUniqueConstraint = "users_email_key"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, user User, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", user.Username))

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO users (id, username, email, password_hash, is_private, created_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		user.ID, user.Username, user.Email, passwordHash, user.IsPrivate, user.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			if pkg.ViolatedConstraint(err) == emailUniqueConstraint {
				return nil, ErrEmailTaken
			}
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &user, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("username", username))

	var u User
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, email, is_private, created_at FROM users WHERE username = $1;`,
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.IsPrivate, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	var u User
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, email, is_private, created_at FROM users WHERE id = $1;`,
		id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.IsPrivate, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// GetCredentials is used by the login flow.
func (r *Repo) GetCredentials(ctx context.Context, username string) (_ uuid.UUID, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.credentials")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id uuid.UUID
	var passwordHash string
	err = r.db.QueryRow(
		ctx,
		`SELECT id, password_hash FROM users WHERE username = $1;`,
		username,
	).Scan(&id, &passwordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, "", ErrUserNotFound
	}
	if err != nil {
		return uuid.Nil, "", err
	}

	return id, passwordHash, nil
}
