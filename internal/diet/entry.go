package diet

import (
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrEntryNotFound = fmt.Errorf("diet entry %w", nutrition.ErrNotFound)

// Entry is one logged food. Quantity is stored normalized, i.e. as the multiplier
// of the food's nutrient profile.
type Entry struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Date       time.Time       `json:"date"`
	MealSlotID uuid.UUID       `json:"meal_of_day_id"`
	FoodID     uuid.UUID       `json:"food_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// SlotRef names a meal slot either by id or by slug. The id wins when both are set.
type SlotRef struct {
	MealOfDayID   uuid.NullUUID `json:"meal_of_day_id"`
	MealOfDaySlug string        `json:"meal_of_day_slug"`
}

// EntryRequest carries the quantity as the user entered it, e.g. 150 for 150 g.
type EntryRequest struct {
	Date string `json:"date"`
	SlotRef
	FoodID   uuid.UUID       `json:"food_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

type FoodQuantity struct {
	FoodID   uuid.UUID       `json:"food_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// FromFoodsRequest logs several foods into the same slot of the same day.
type FromFoodsRequest struct {
	Date string `json:"date"`
	SlotRef
	Foods []FoodQuantity `json:"foods"`
}

// FromSavedMealRequest logs every food of a saved meal into one slot of a day.
type FromSavedMealRequest struct {
	Date string `json:"date"`
	SlotRef
	SavedMealID uuid.UUID `json:"saved_meal_id"`
}

type ListParams struct {
	Page int
	Size int
}
