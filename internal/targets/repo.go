package targets

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

// targetColumns and targetFields list the same columns in the same order. Writes
// return the stored row, so callers see the values as rounded by the NUMERIC columns.
const targetColumns = `id, user_id, date, weight, energy, protein, carbohydrate, fat,
	saturates, sugars, fibre, salt, created_at, updated_at`

func targetFields(t *DietTarget) []any {
	return []any{
		&t.ID, &t.UserID, &t.Date, &t.Weight, &t.Energy,
		&t.Protein, &t.Carbohydrate, &t.Fat,
		&t.Saturates, &t.Sugars, &t.Fibre, &t.Salt,
		&t.CreatedAt, &t.UpdatedAt,
	}
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, target DietTarget) (_ *DietTarget, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	target.ID = uuid.New()
	target.Date = nutrition.DateOf(target.Date)
	span.SetAttributes(attribute.String("target.id", target.ID.String()))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO diet_target
				(id, user_id, date, weight, energy, protein, carbohydrate, fat, saturates, sugars, fibre, salt)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING `+targetColumns+`;`,
		target.ID, target.UserID, target.Date, target.Weight, target.Energy,
		target.Protein, target.Carbohydrate, target.Fat,
		target.Saturates, target.Sugars, target.Fibre, target.Salt,
	).Scan(targetFields(&target)...)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrTargetExists
		}
		return nil, fmt.Errorf("insert diet target: %w", err)
	}

	return &target, nil
}

func (r *Repo) Update(ctx context.Context, target DietTarget) (_ *DietTarget, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("target.id", target.ID.String()))

	target.Date = nutrition.DateOf(target.Date)
	err = r.db.QueryRow(
		ctx,
		`UPDATE diet_target SET
				date = $1, weight = $2, energy = $3, protein = $4, carbohydrate = $5, fat = $6,
				saturates = $7, sugars = $8, fibre = $9, salt = $10, updated_at = now()
			WHERE id = $11 AND user_id = $12
			RETURNING `+targetColumns+`;`,
		target.Date, target.Weight, target.Energy, target.Protein, target.Carbohydrate, target.Fat,
		target.Saturates, target.Sugars, target.Fibre, target.Salt,
		target.ID, target.UserID,
	).Scan(targetFields(&target)...)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrTargetNotFound
		case pkg.IsUniqueViolationError(err):
			return nil, ErrTargetExists
		}
		return nil, err
	}
	return &target, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("target.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM diet_target WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTargetNotFound
	}
	return nil
}

func (r *Repo) DeleteIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (_ []uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.deleteIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(ids)))

	rows, err := r.db.Query(ctx, `DELETE FROM diet_target WHERE user_id = $1 AND id = ANY($2) RETURNING id;`, userID, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func (r *Repo) DeleteDates(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.deleteDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`DELETE FROM diet_target WHERE user_id = $1 AND date BETWEEN $2 AND $3 RETURNING id;`,
		userID, nutrition.DateOf(from), nutrition.DateOf(to),
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *DietTarget, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("target.id", id.String()))

	return r.one(ctx, `SELECT `+targetColumns+` FROM diet_target WHERE id = $1 AND user_id = $2;`, id, userID)
}

func (r *Repo) GetForDate(ctx context.Context, userID uuid.UUID, date time.Time) (_ *DietTarget, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.getForDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.one(ctx, `SELECT `+targetColumns+` FROM diet_target WHERE user_id = $1 AND date = $2;`, userID, nutrition.DateOf(date))
}

// Latest returns the target with the greatest date at or before date.
func (r *Repo) Latest(ctx context.Context, userID uuid.UUID, date time.Time) (_ *DietTarget, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.one(
		ctx,
		`SELECT `+targetColumns+` FROM diet_target
			WHERE user_id = $1 AND date <= $2
			ORDER BY date DESC
			LIMIT 1;`,
		userID, nutrition.DateOf(date),
	)
}

func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []DietTarget, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.targets.listRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+targetColumns+` FROM diet_target
			WHERE user_id = $1 AND date BETWEEN $2 AND $3
			ORDER BY date;`,
		userID, nutrition.DateOf(from), nutrition.DateOf(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2targets(rows)
}

// MacrosRange is ListRange reduced to the values shown next to the daily intake.
func (r *Repo) MacrosRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]nutrition.TargetMacros, error) {
	targets, err := r.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	macros := make([]nutrition.TargetMacros, 0, len(targets))
	for _, t := range targets {
		macros = append(macros, t.AsTargetMacros())
	}
	return macros, nil
}

func (r *Repo) one(ctx context.Context, query string, args ...any) (*DietTarget, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets, err := rows2targets(rows)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, ErrTargetNotFound
	}
	return &targets[0], nil
}

func rows2targets(rows pgx.Rows) ([]DietTarget, error) {
	targets := make([]DietTarget, 0)
	for rows.Next() {
		var t DietTarget
		if err := rows.Scan(targetFields(&t)...); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}
