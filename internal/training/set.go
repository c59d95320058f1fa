package training

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrSetNotFound = fmt.Errorf("workout set %w", nutrition.ErrNotFound)

var maxWeightKg = decimal.NewFromInt(1000)

const maxReps = 999

// Set is one logged set of a movement. Weight is missing for bodyweight movements.
type Set struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"user_id"`
	Date        time.Time           `json:"date"`
	Movement    string              `json:"movement"`
	WeightKg    decimal.NullDecimal `json:"weight"`
	Reps        int                 `json:"reps"`
	RestSeconds *int                `json:"rest"`
	Notes       *string             `json:"notes"`
	CreatedAt   time.Time           `json:"created_at"`
}

type SetRequest struct {
	Date        string              `json:"date"`
	Movement    string              `json:"movement"`
	WeightKg    decimal.NullDecimal `json:"weight"`
	Reps        int                 `json:"reps"`
	RestSeconds *int                `json:"rest"`
	Notes       *string             `json:"notes"`
}

func (r SetRequest) ToSet() (Set, error) {
	date, err := nutrition.ParseDate(r.Date)
	if err != nil {
		return Set{}, err
	}

	movement := strings.ToLower(strings.TrimSpace(r.Movement))
	if movement == "" {
		return Set{}, &nutrition.ValidationError{Field: "movement", Constraint: "must not be empty"}
	}
	if r.Reps < 1 || r.Reps > maxReps {
		return Set{}, &nutrition.ValidationError{Field: "reps", Constraint: "must be between 1 and 999"}
	}
	if r.WeightKg.Valid {
		if r.WeightKg.Decimal.IsNegative() {
			return Set{}, &nutrition.ValidationError{Field: "weight", Constraint: "must be a positive number"}
		}
		if r.WeightKg.Decimal.GreaterThanOrEqual(maxWeightKg) {
			return Set{}, &nutrition.ValidationError{Field: "weight", Constraint: "must be less than 1000.00"}
		}
	}
	if r.RestSeconds != nil && *r.RestSeconds < 0 {
		return Set{}, &nutrition.ValidationError{Field: "rest", Constraint: "must be a positive number"}
	}

	set := Set{
		Date:        date,
		Movement:    movement,
		WeightKg:    r.WeightKg,
		Reps:        r.Reps,
		RestSeconds: r.RestSeconds,
	}
	if r.Notes != nil {
		if notes := strings.TrimSpace(*r.Notes); notes != "" {
			set.Notes = &notes
		}
	}
	return set, nil
}
