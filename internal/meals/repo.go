package meals

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMealSlotNotFound = fmt.Errorf("meal slot %w", nutrition.ErrNotFound)

// Repo reads the meal-of-day reference list. The list is maintained by migrations only.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context) (_ []nutrition.MealSlot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name, slug, ordering FROM meal_of_day ORDER BY ordering, name;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	slots := make([]nutrition.MealSlot, 0)
	for rows.Next() {
		var s nutrition.MealSlot
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Ordering); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return slots, nil
}
