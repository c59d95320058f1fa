package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres SQLSTATE codes, https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

func hasPgCode(err error, code string) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == code
}

// IsUniqueViolationError reports a duplicate key, e.g. a second progress reading
// for the same user and date.
func IsUniqueViolationError(err error) bool {
	return hasPgCode(err, pgCodeUniqueViolation)
}

// IsForeignKeyViolationError reports a row still referenced elsewhere, e.g. a food
// used by diet entries.
func IsForeignKeyViolationError(err error) bool {
	return hasPgCode(err, pgCodeForeignKeyViolation)
}

// ViolatedConstraint returns the name of the constraint err broke, or "".
func ViolatedConstraint(err error) string {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.ConstraintName
	}
	return ""
}
