package savedmeals

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	mealColumns     = `id, user_id, name, created_at, updated_at`
	mealFoodColumns = `id, saved_meal_id, food_id, quantity, created_at`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, meal SavedMeal) (_ *SavedMeal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	meal.ID = uuid.New()
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO saved_meal (id, user_id, name)
			VALUES ($1, $2, $3)
			RETURNING created_at, updated_at;`,
		meal.ID, meal.UserID, meal.Name,
	).Scan(&meal.CreatedAt, &meal.UpdatedAt)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("savedMeal.id", meal.ID.String()))
	return &meal, nil
}

func (r *Repo) Update(ctx context.Context, meal SavedMeal) (_ *SavedMeal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMeal.id", meal.ID.String()))

	err = r.db.QueryRow(
		ctx,
		`UPDATE saved_meal SET name = $1, updated_at = now()
			WHERE id = $2 AND user_id = $3
			RETURNING created_at, updated_at;`,
		meal.Name, meal.ID, meal.UserID,
	).Scan(&meal.CreatedAt, &meal.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSavedMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *SavedMeal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMeal.id", id.String()))

	rows, err := r.db.Query(ctx, `SELECT `+mealColumns+` FROM saved_meal WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals, err := rows2meals(rows)
	if err != nil {
		return nil, err
	}
	if len(meals) != 1 {
		return nil, ErrSavedMealNotFound
	}
	return &meals[0], nil
}

// List pages through the user's saved meals by name.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, params ListParams) (_ []SavedMeal, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.list")
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

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM saved_meal WHERE user_id = $1;`, userID).Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count saved meals: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealColumns+` FROM saved_meal
			WHERE user_id = $1
			ORDER BY name, created_at
			LIMIT $2
			OFFSET $3;`,
		userID, params.Size, (params.Page-1)*params.Size,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	meals, err := rows2meals(rows)
	if err != nil {
		return nil, -1, err
	}
	return meals, total, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMeal.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM saved_meal WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSavedMealNotFound
	}
	return nil
}

func (r *Repo) DeleteIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (_ []uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.deleteIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(ids)))

	rows, err := r.db.Query(ctx, `DELETE FROM saved_meal WHERE user_id = $1 AND id = ANY($2) RETURNING id;`, userID, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

// AddFood only inserts when the saved meal belongs to userID.
func (r *Repo) AddFood(ctx context.Context, userID uuid.UUID, food MealFood) (_ *MealFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.addFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMeal.id", food.MealID.String()))

	food.ID = uuid.New()
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO saved_meal_food (id, saved_meal_id, food_id, quantity)
			SELECT $1::uuid, m.id, $3::uuid, $4::numeric FROM saved_meal m
			WHERE m.id = $2 AND m.user_id = $5
			RETURNING created_at;`,
		food.ID, food.MealID, food.FoodID, food.Quantity, userID,
	).Scan(&food.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSavedMealNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (r *Repo) UpdateFood(ctx context.Context, userID uuid.UUID, food MealFood) (_ *MealFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.updateFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMealFood.id", food.ID.String()))

	err = r.db.QueryRow(
		ctx,
		`UPDATE saved_meal_food mf SET food_id = $1, quantity = $2
			FROM saved_meal m
			WHERE mf.id = $3 AND m.id = mf.saved_meal_id AND m.user_id = $4
			RETURNING mf.saved_meal_id, mf.created_at;`,
		food.FoodID, food.Quantity, food.ID, userID,
	).Scan(&food.MealID, &food.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMealFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (r *Repo) DeleteFood(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.deleteFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMealFood.id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM saved_meal_food mf USING saved_meal m
			WHERE mf.id = $1 AND m.id = mf.saved_meal_id AND m.user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealFoodNotFound
	}
	return nil
}

// Foods lists the foods of a saved meal owned by userID. An unknown or foreign
// meal yields ErrSavedMealNotFound, an empty meal an empty slice.
func (r *Repo) Foods(ctx context.Context, userID, mealID uuid.UUID) (_ []MealFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.foods")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMeal.id", mealID.String()))

	if err := r.checkOwner(ctx, userID, mealID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealFoodColumns+` FROM saved_meal_food
			WHERE saved_meal_id = $1
			ORDER BY created_at;`,
		mealID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := make([]MealFood, 0)
	for rows.Next() {
		var f MealFood
		if err := rows.Scan(&f.ID, &f.MealID, &f.FoodID, &f.Quantity, &f.CreatedAt); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return foods, nil
}

// Items returns the foods of a saved meal joined with their nutrient profiles,
// ready for the rollup. The item id is the saved meal food id.
func (r *Repo) Items(ctx context.Context, userID, mealID uuid.UUID) (_ []nutrition.LoggedItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.items")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMeal.id", mealID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT mf.id, m.user_id, mf.food_id, mf.quantity,
				f.name, f.brand_name, f.data_value, f.data_measurement,
				f.energy, f.protein, f.carbohydrate, f.fat, f.saturates, f.sugars, f.fibre, f.salt
			FROM saved_meal_food mf
				JOIN saved_meal m ON m.id = mf.saved_meal_id
				JOIN food f ON f.id = mf.food_id
			WHERE mf.saved_meal_id = $1 AND m.user_id = $2
			ORDER BY mf.created_at;`,
		mealID, userID,
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
			&item.ID, &item.UserID, &item.FoodID, &item.Quantity,
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

// CreateFromDiet stores a new saved meal holding the foods and quantities of the
// user's listed diet entries, all in one transaction.
func (r *Repo) CreateFromDiet(ctx context.Context, meal SavedMeal, dietIDs []uuid.UUID) (_ *SavedMeal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.savedMeals.createFromDiet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(dietIDs)))

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

	rows, err := tx.Query(
		ctx,
		`SELECT food_id, quantity FROM diet
			WHERE user_id = $1 AND id = ANY($2)
			ORDER BY date, created_at;`,
		meal.UserID, dietIDs,
	)
	if err != nil {
		return nil, err
	}
	foods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (MealFood, error) {
		var f MealFood
		err := row.Scan(&f.FoodID, &f.Quantity)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("read diet entries: %w", err)
	}
	if len(foods) == 0 {
		return nil, &nutrition.ValidationError{Field: "id_range", Constraint: "no diet entries found"}
	}

	meal.ID = uuid.New()
	err = tx.QueryRow(
		ctx,
		`INSERT INTO saved_meal (id, user_id, name)
			VALUES ($1, $2, $3)
			RETURNING created_at, updated_at;`,
		meal.ID, meal.UserID, meal.Name,
	).Scan(&meal.CreatedAt, &meal.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert saved meal: %w", err)
	}

	for _, f := range foods {
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO saved_meal_food (id, saved_meal_id, food_id, quantity) VALUES ($1, $2, $3, $4);`,
			uuid.New(), meal.ID, f.FoodID, f.Quantity,
		); err != nil {
			return nil, fmt.Errorf("insert saved meal food: %w", err)
		}
	}

	return &meal, nil
}

func (r *Repo) checkOwner(ctx context.Context, userID, mealID uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM saved_meal WHERE id = $1 AND user_id = $2);`,
		mealID, userID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSavedMealNotFound
	}
	return nil
}

func rows2meals(rows pgx.Rows) ([]SavedMeal, error) {
	meals := make([]SavedMeal, 0)
	for rows.Next() {
		var m SavedMeal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return meals, nil
}
