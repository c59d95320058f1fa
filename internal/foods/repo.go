package foods

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const foodColumns = `id, name, brand_name, data_value, data_measurement,
	energy, protein, carbohydrate, fat, saturates, sugars, fibre, salt,
	created_by, created_at`

type ListParams struct {
	Query string
	Page  int
	Size  int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, food Food) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	food.ID = uuid.New()
	span.SetAttributes(attribute.String("food.id", food.ID.String()))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO food
				(id, name, brand_name, data_value, data_measurement,
				 energy, protein, carbohydrate, fat, saturates, sugars, fibre, salt, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING created_at;`,
		food.ID, food.Name, food.BrandName, food.DataValue, string(food.DataMeasurement),
		food.Energy, food.Protein, food.Carbohydrate, food.Fat,
		food.Saturates, food.Sugars, food.Fibre, food.Salt, food.CreatedBy,
	).Scan(&food.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert food: %w", err)
	}

	return &food, nil
}

func (r *Repo) Update(ctx context.Context, food Food) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("food.id", food.ID.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE food SET
				name = $1, brand_name = $2, data_value = $3, data_measurement = $4,
				energy = $5, protein = $6, carbohydrate = $7, fat = $8,
				saturates = $9, sugars = $10, fibre = $11, salt = $12
			WHERE id = $13;`,
		food.Name, food.BrandName, food.DataValue, string(food.DataMeasurement),
		food.Energy, food.Protein, food.Carbohydrate, food.Fat,
		food.Saturates, food.Sugars, food.Fibre, food.Salt, food.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("food.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM food WHERE id = $1;`, id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrFoodInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("food.id", id.String()))

	rows, err := r.db.Query(ctx, `SELECT `+foodColumns+` FROM food WHERE id = $1;`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods, err := rows2foods(rows)
	if err != nil {
		return nil, err
	}
	if len(foods) != 1 {
		return nil, ErrFoodNotFound
	}

	return &foods[0], nil
}

// GetMany returns the foods with the given ids, keyed by id. Unknown ids are skipped.
func (r *Repo) GetMany(ctx context.Context, ids []uuid.UUID) (_ map[uuid.UUID]Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.getMany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(ids)))

	rows, err := r.db.Query(ctx, `SELECT `+foodColumns+` FROM food WHERE id = ANY($1);`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods, err := rows2foods(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}
	return byID, nil
}

// List returns a page of foods whose name or brand contains the query.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Food, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.foods.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))
	span.SetAttributes(attribute.String("query", params.Query))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	err = r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM food
			WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%' OR brand_name ILIKE '%' || $1 || '%');`,
		params.Query,
	).Scan(&total)
	if err != nil {
		return nil, -1, fmt.Errorf("count foods: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+foodColumns+` FROM food
			WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%' OR brand_name ILIKE '%' || $1 || '%')
			ORDER BY name, brand_name
			LIMIT $2
			OFFSET $3;`,
		params.Query, params.Size, (params.Page-1)*params.Size,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	foods, err := rows2foods(rows)
	if err != nil {
		return nil, -1, err
	}
	return foods, total, nil
}

func rows2foods(rows pgx.Rows) ([]Food, error) {
	foods := make([]Food, 0)
	for rows.Next() {
		var f Food
		var unit string
		if err := rows.Scan(
			&f.ID, &f.Name, &f.BrandName, &f.DataValue, &unit,
			&f.Energy, &f.Protein, &f.Carbohydrate, &f.Fat,
			&f.Saturates, &f.Sugars, &f.Fibre, &f.Salt,
			&f.CreatedBy, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		f.DataMeasurement = nutrition.UnitFromCode(unit)
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return foods, nil
}
