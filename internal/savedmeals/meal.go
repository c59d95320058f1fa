package savedmeals

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	minNameLength = 3
	maxNameLength = 15
)

var (
	ErrSavedMealNotFound = fmt.Errorf("saved meal %w", nutrition.ErrNotFound)
	ErrMealFoodNotFound  = fmt.Errorf("saved meal food %w", nutrition.ErrNotFound)
)

// SavedMeal is a named, reusable set of foods owned by one user.
type SavedMeal struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MealFood is one food of a saved meal. Quantity is normalized the same way diet
// entries are, so it can be copied into the diet log as is.
type MealFood struct {
	ID        uuid.UUID       `json:"id"`
	MealID    uuid.UUID       `json:"saved_meal_id"`
	FoodID    uuid.UUID       `json:"food_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

type FoodTotal struct {
	MealFoodID      uuid.UUID       `json:"id"`
	FoodID          uuid.UUID       `json:"food_id"`
	FoodName        string          `json:"food_name"`
	BrandName       string          `json:"brand_name"`
	DataValue       decimal.Decimal `json:"data_value"`
	DataMeasurement nutrition.Unit  `json:"data_measurement"`
	Quantity        decimal.Decimal `json:"quantity"`
	nutrition.Nutrients
}

// Detail is a saved meal with its foods scaled by quantity and their sum.
type Detail struct {
	SavedMeal
	FoodCount int                 `json:"food_count"`
	Totals    nutrition.Nutrients `json:"totals"`
	Foods     []FoodTotal         `json:"foods"`
}

func newDetail(meal SavedMeal, items []nutrition.LoggedItem) *Detail {
	totals := make([]nutrition.ItemTotal, 0, len(items))
	foods := make([]FoodTotal, 0, len(items))
	for _, item := range items {
		total := nutrition.Total(item)
		totals = append(totals, total)
		foods = append(foods, FoodTotal{
			MealFoodID:      total.DietID,
			FoodID:          total.FoodID,
			FoodName:        total.FoodName,
			BrandName:       total.BrandName,
			DataValue:       total.DataValue,
			DataMeasurement: total.DataMeasurement,
			Quantity:        total.Quantity,
			Nutrients:       total.Nutrients,
		})
	}
	return &Detail{
		SavedMeal: meal,
		FoodCount: len(foods),
		Totals:    nutrition.Rollup(totals),
		Foods:     foods,
	}
}

type Request struct {
	Name string `json:"name"`
}

// FoodRequest carries the quantity as the user entered it, e.g. 150 for 150 g.
type FoodRequest struct {
	FoodID   uuid.UUID       `json:"food_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// FromDietRequest copies the listed diet entries into a new saved meal.
type FromDietRequest struct {
	Name    string      `json:"name"`
	DietIDs []uuid.UUID `json:"id_range"`
}

type ListParams struct {
	Page int
	Size int
}

// NormalizeName trims the name and checks its length in characters.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return "", &nutrition.ValidationError{
			Field:      "name",
			Constraint: fmt.Sprintf("must be between %d and %d characters", minNameLength, maxNameLength),
		}
	}
	return name, nil
}
