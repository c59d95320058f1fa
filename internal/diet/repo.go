package diet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const entryColumns = `id, user_id, date, meal_of_day_id, food_id, quantity, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := r.AddMany(ctx, []Entry{entry})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("diet.id", added[0].ID.String()))
	return &added[0], nil
}

// AddMany stores all entries in one transaction.
func (r *Repo) AddMany(ctx context.Context, entries []Entry) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.addMany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(entries)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	added := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		entry.ID = uuid.New()
		entry.Date = nutrition.DateOf(entry.Date)
		err = tx.QueryRow(
			ctx,
			`INSERT INTO diet (id, user_id, date, meal_of_day_id, food_id, quantity)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING created_at, updated_at;`,
			entry.ID, entry.UserID, entry.Date, entry.MealSlotID, entry.FoodID, entry.Quantity,
		).Scan(&entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert diet entry: %w", err)
		}
		added = append(added, entry)
	}

	return added, nil
}

func (r *Repo) Update(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("diet.id", entry.ID.String()))

	entry.Date = nutrition.DateOf(entry.Date)
	err = r.db.QueryRow(
		ctx,
		`UPDATE diet SET date = $1, meal_of_day_id = $2, food_id = $3, quantity = $4, updated_at = now()
			WHERE id = $5 AND user_id = $6
			RETURNING created_at, updated_at;`,
		entry.Date, entry.MealSlotID, entry.FoodID, entry.Quantity, entry.ID, entry.UserID,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("diet.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM diet WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *Repo) DeleteIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (_ []uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.deleteIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(ids)))

	rows, err := r.db.Query(ctx, `DELETE FROM diet WHERE user_id = $1 AND id = ANY($2) RETURNING id;`, userID, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func (r *Repo) DeleteDates(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.deleteDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`DELETE FROM diet WHERE user_id = $1 AND date BETWEEN $2 AND $3 RETURNING id;`,
		userID, nutrition.DateOf(from), nutrition.DateOf(to),
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("diet.id", id.String()))

	rows, err := r.db.Query(ctx, `SELECT `+entryColumns+` FROM diet WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := rows2entries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) != 1 {
		return nil, ErrEntryNotFound
	}
	return &entries[0], nil
}

// List pages through the user's entries, newest date first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, params ListParams) (_ []Entry, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM diet WHERE user_id = $1;`, userID).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count diet entries: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+entryColumns+` FROM diet
			WHERE user_id = $1
			ORDER BY date DESC, created_at DESC
			LIMIT $2
			OFFSET $3;`,
		userID, params.Size, (params.Page-1)*params.Size,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	entries, err := rows2entries(rows)
	if err != nil {
		return nil, -1, err
	}
	return entries, total, nil
}

// Items returns the user's entries between from and to, both inclusive, joined with
// their foods and ready for the rollup.
func (r *Repo) Items(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []nutrition.LoggedItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.items")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT d.id, d.user_id, d.date, d.meal_of_day_id, d.food_id, d.quantity,
				f.name, f.brand_name, f.data_value, f.data_measurement,
				f.energy, f.protein, f.carbohydrate, f.fat, f.saturates, f.sugars, f.fibre, f.salt
			FROM diet d
				JOIN food f ON f.id = d.food_id
			WHERE d.user_id = $1 AND d.date BETWEEN $2 AND $3
			ORDER BY d.date, d.created_at;`,
		userID, nutrition.DateOf(from), nutrition.DateOf(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]nutrition.LoggedItem, 0)
	for rows.Next() {
		var item nutrition.LoggedItem
		var unit string
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Date, &item.MealSlotID, &item.FoodID, &item.Quantity,
			&item.FoodName, &item.BrandName, &item.DataValue, &unit,
			&item.Profile.Energy, &item.Profile.Protein, &item.Profile.Carbohydrate, &item.Profile.Fat,
			&item.Profile.Saturates, &item.Profile.Sugars, &item.Profile.Fibre, &item.Profile.Salt,
		); err != nil {
			return nil, err
		}
		item.DataMeasurement = nutrition.UnitFromCode(unit)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func rows2entries(rows pgx.Rows) ([]Entry, error) {
	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Date, &e.MealSlotID, &e.FoodID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
