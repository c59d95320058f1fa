package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const readingColumns = `id, user_id, date, weight_kg, energy_burnt, notes`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, reading nutrition.Reading) (_ *nutrition.Reading, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	reading.ID = uuid.New()
	reading.Date = nutrition.DateOf(reading.Date)
	span.SetAttributes(attribute.String("progress.id", reading.ID.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO progress (`+readingColumns+`) VALUES ($1, $2, $3, $4, $5, $6);`,
		reading.ID, reading.UserID, reading.Date, reading.WeightKg, reading.EnergyBurnt, reading.Notes,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrReadingExists
		}
		return nil, fmt.Errorf("insert progress: %w", err)
	}

	return &reading, nil
}

func (r *Repo) Update(ctx context.Context, reading nutrition.Reading) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("progress.id", reading.ID.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE progress SET date = $1, weight_kg = $2, energy_burnt = $3, notes = $4, updated_at = now()
			WHERE id = $5 AND user_id = $6;`,
		nutrition.DateOf(reading.Date), reading.WeightKg, reading.EnergyBurnt, reading.Notes,
		reading.ID, reading.UserID,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrReadingExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReadingNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("progress.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM progress WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReadingNotFound
	}
	return nil
}

// DeleteIDs removes the listed readings of the user and returns the ids actually deleted.
func (r *Repo) DeleteIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (_ []uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.deleteIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(ids)))

	rows, err := r.db.Query(
		ctx,
		`DELETE FROM progress WHERE user_id = $1 AND id = ANY($2) RETURNING id;`,
		userID, ids,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

// DeleteDates removes the readings of the user between from and to, both inclusive.
func (r *Repo) DeleteDates(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.deleteDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`DELETE FROM progress WHERE user_id = $1 AND date BETWEEN $2 AND $3 RETURNING id;`,
		userID, nutrition.DateOf(from), nutrition.DateOf(to),
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *nutrition.Reading, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("progress.id", id.String()))

	return r.one(ctx, `SELECT `+readingColumns+` FROM progress WHERE id = $1 AND user_id = $2;`, id, userID)
}

func (r *Repo) GetForDate(ctx context.Context, userID uuid.UUID, date time.Time) (_ *nutrition.Reading, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.getForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.one(ctx, `SELECT `+readingColumns+` FROM progress WHERE user_id = $1 AND date = $2;`, userID, nutrition.DateOf(date))
}

// Latest returns the most recent reading with a weight at or before date,
// or nil when the user has none.
func (r *Repo) Latest(ctx context.Context, userID uuid.UUID, date time.Time) (_ *nutrition.Reading, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	reading, err := r.one(
		ctx,
		`SELECT `+readingColumns+` FROM progress
			WHERE user_id = $1 AND date <= $2 AND weight_kg IS NOT NULL
			ORDER BY date DESC
			LIMIT 1;`,
		userID, nutrition.DateOf(date),
	)
	if errors.Is(err, ErrReadingNotFound) {
		return nil, nil
	}
	return reading, err
}

// ListRange returns the readings between from and to, both inclusive, ordered by date.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []nutrition.Reading, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+readingColumns+` FROM progress
			WHERE user_id = $1 AND date BETWEEN $2 AND $3
			ORDER BY date;`,
		userID, nutrition.DateOf(from), nutrition.DateOf(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2readings(rows)
}

func (r *Repo) one(ctx context.Context, query string, args ...any) (*nutrition.Reading, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readings, err := rows2readings(rows)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrReadingNotFound
	}
	return &readings[0], nil
}

func rows2readings(rows pgx.Rows) ([]nutrition.Reading, error) {
	readings := make([]nutrition.Reading, 0)
	for rows.Next() {
		var reading nutrition.Reading
		if err := rows.Scan(
			&reading.ID, &reading.UserID, &reading.Date,
			&reading.WeightKg, &reading.EnergyBurnt, &reading.Notes,
		); err != nil {
			return nil, err
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return readings, nil
}
