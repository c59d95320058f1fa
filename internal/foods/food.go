package foods

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/google/uuid"
)

var (
	ErrFoodNotFound = fmt.Errorf("food %w", nutrition.ErrNotFound)
	ErrFoodInUse    = fmt.Errorf("food in use: %w", nutrition.ErrConflict)
)

// Food is a catalogue entry. Its nutrient profile is given per DataValue units of
// DataMeasurement, e.g. per 100 g or per 1 serving.
type Food struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	BrandName       string         `json:"brand_name"`
	DataValue       int            `json:"data_value"`
	DataMeasurement nutrition.Unit `json:"data_measurement"`
	nutrition.NutrientProfile
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type FoodRequest struct {
	Name            string `json:"name"`
	BrandName       string `json:"brand_name"`
	DataValue       int    `json:"data_value"`
	DataMeasurement string `json:"data_measurement"`
	nutrition.NutrientProfile
}

// ToFood validates the request and builds the food from it.
func (r FoodRequest) ToFood() (Food, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return Food{}, &nutrition.ValidationError{Field: "name", Constraint: "must not be empty"}
	}
	if r.DataValue <= 0 {
		return Food{}, &nutrition.ValidationError{Field: "data_value", Constraint: "must be greater than 0"}
	}
	unit, err := nutrition.ParseUnit(r.DataMeasurement)
	if err != nil {
		return Food{}, err
	}
	if err := r.NutrientProfile.Validate(); err != nil {
		return Food{}, err
	}

	return Food{
		Name:            name,
		BrandName:       strings.TrimSpace(r.BrandName),
		DataValue:       r.DataValue,
		DataMeasurement: unit,
		NutrientProfile: r.NutrientProfile,
	}, nil
}
