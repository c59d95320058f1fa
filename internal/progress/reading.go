package progress

import (
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/shopspring/decimal"
)

var (
	ErrReadingNotFound = fmt.Errorf("progress %w", nutrition.ErrNotFound)
	ErrReadingExists   = fmt.Errorf("progress for this date already exists: %w", nutrition.ErrConflict)
)

var maxWeightKg = decimal.NewFromInt(1000)

type ReadingRequest struct {
	Date        string              `json:"date"`
	WeightKg    decimal.NullDecimal `json:"weight_kg"`
	EnergyBurnt *int                `json:"energy_burnt"`
	Notes       *string             `json:"notes"`
}

// ToReading validates the request. Weight and energy burnt are both optional.
func (r ReadingRequest) ToReading() (nutrition.Reading, error) {
	date, err := nutrition.ParseDate(r.Date)
	if err != nil {
		return nutrition.Reading{}, err
	}
	if r.WeightKg.Valid {
		if r.WeightKg.Decimal.IsNegative() {
			return nutrition.Reading{}, &nutrition.ValidationError{Field: "weight_kg", Constraint: "must be a positive number"}
		}
		if r.WeightKg.Decimal.GreaterThanOrEqual(maxWeightKg) {
			return nutrition.Reading{}, &nutrition.ValidationError{Field: "weight_kg", Constraint: "must be less than 1000.00"}
		}
	}
	if r.EnergyBurnt != nil && *r.EnergyBurnt < 0 {
		return nutrition.Reading{}, &nutrition.ValidationError{Field: "energy_burnt", Constraint: "must be a positive number"}
	}

	reading := nutrition.Reading{
		Date:        date,
		WeightKg:    r.WeightKg,
		EnergyBurnt: r.EnergyBurnt,
	}
	if r.Notes != nil {
		if notes := strings.TrimSpace(*r.Notes); notes != "" {
			reading.Notes = &notes
		}
	}
	return reading, nil
}
