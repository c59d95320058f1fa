package training

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const setColumns = `id, user_id, date, movement, weight_kg, reps, rest_seconds, notes, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	set.ID = uuid.New()
	set.Date = nutrition.DateOf(set.Date)
	span.SetAttributes(attribute.String("set.id", set.ID.String()))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_set
				(id, user_id, date, movement, weight_kg, reps, rest_seconds, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at;`,
		set.ID, set.UserID, set.Date, set.Movement, set.WeightKg, set.Reps, set.RestSeconds, set.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("insert workout set: %w", err)
	}

	createdAt, err := pgx.CollectExactlyOneRow(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("insert workout set: %w", err)
	}
	set.CreatedAt = createdAt

	return &set, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("set.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_set WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *Repo) ListForDate(ctx context.Context, userID uuid.UUID, date time.Time) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.listForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day := nutrition.DateOf(date)
	return r.ListRange(ctx, userID, day, day)
}

// ListRange returns the sets between from and to, both inclusive, in the order they were logged.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+setColumns+` FROM workout_set
			WHERE user_id = $1 AND date BETWEEN $2 AND $3
			ORDER BY date, created_at;`,
		userID, nutrition.DateOf(from), nutrition.DateOf(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := make([]Set, 0)
	for rows.Next() {
		var s Set
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Date, &s.Movement, &s.WeightKg,
			&s.Reps, &s.RestSeconds, &s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("count", len(sets)))
	return sets, nil
}
