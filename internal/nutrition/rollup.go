package nutrition

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoggedItem is a diet log row joined with its food. Quantity is already normalized.
type LoggedItem struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Date            time.Time
	MealSlotID      uuid.UUID
	FoodID          uuid.UUID
	FoodName        string
	BrandName       string
	DataValue       int
	DataMeasurement Unit
	Quantity        decimal.Decimal
	Profile         NutrientProfile
}

type ItemTotal struct {
	DietID          uuid.UUID       `json:"diet_id"`
	MealSlotID      uuid.UUID       `json:"meal_of_day_id"`
	FoodID          uuid.UUID       `json:"food_id"`
	FoodName        string          `json:"food_name"`
	BrandName       string          `json:"brand_name"`
	DataValue       decimal.Decimal `json:"data_value"`
	DataMeasurement Unit            `json:"data_measurement"`
	Quantity        decimal.Decimal `json:"quantity"`
	Nutrients
}

func Total(item LoggedItem) ItemTotal {
	return ItemTotal{
		DietID:          item.ID,
		MealSlotID:      item.MealSlotID,
		FoodID:          item.FoodID,
		FoodName:        item.FoodName,
		BrandName:       item.BrandName,
		DataValue:       item.Quantity.Mul(decimal.NewFromInt(int64(item.DataValue))),
		DataMeasurement: item.DataMeasurement,
		Quantity:        item.Quantity,
		Nutrients:       item.Profile.Scale(item.Quantity),
	}
}

func Rollup(items []ItemTotal) Nutrients {
	var sum Nutrients
	for _, item := range items {
		sum = sum.Add(item.Nutrients)
	}
	return sum
}

type MealSlot struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Ordering int       `json:"ordering"`
}

type MealTotal struct {
	MealSlotID uuid.UUID `json:"meal_of_day_id"`
	Name       string    `json:"meal_of_day_name"`
	Slug       string    `json:"meal_of_day_slug"`
	Ordering   int       `json:"ordering"`
	Nutrients
	Items []ItemTotal `json:"items"`
}

type DayTotal struct {
	UserID  uuid.UUID `json:"user_id"`
	Date    time.Time `json:"date"`
	Entries int       `json:"entries"`
	Nutrients
	Macros
	PerKg
	LatestWeight     decimal.NullDecimal `json:"latest_weight"`
	LatestWeightDate *time.Time          `json:"latest_weight_date"`
}

type DietDay struct {
	DayTotal
	Username string      `json:"username"`
	Meals    []MealTotal `json:"diet_meals"`
}

// DayTotalOf rolls up the items of a single day. latest is the most recent weight
// reading at or before the day and may be nil.
func DayTotalOf(userID uuid.UUID, date time.Time, items []ItemTotal, latest *Reading) DayTotal {
	sum := Rollup(items)
	day := DayTotal{
		UserID:    userID,
		Date:      DateOf(date),
		Entries:   len(items),
		Nutrients: sum,
		Macros:    MacroSplit(sum),
	}
	if latest != nil && latest.WeightKg.Valid {
		day.LatestWeight = latest.WeightKg
		weightDate := DateOf(latest.Date)
		day.LatestWeightDate = &weightDate
	}
	day.PerKg = RatiosPerKg(sum, day.LatestWeight)
	return day
}

// BuildDay produces the full day view: totals plus one meal entry per known slot,
// ordered by the slot ordering. Slots without logged items are kept with zero totals.
func BuildDay(
	username string,
	userID uuid.UUID,
	date time.Time,
	slots []MealSlot,
	items []LoggedItem,
	latest *Reading,
) DietDay {
	totals := make([]ItemTotal, 0, len(items))
	bySlot := make(map[uuid.UUID][]ItemTotal)
	for _, item := range items {
		t := Total(item)
		totals = append(totals, t)
		bySlot[item.MealSlotID] = append(bySlot[item.MealSlotID], t)
	}

	ordered := make([]MealSlot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Ordering < ordered[j].Ordering
	})

	meals := make([]MealTotal, 0, len(ordered))
	for _, slot := range ordered {
		slotItems := bySlot[slot.ID]
		if slotItems == nil {
			slotItems = make([]ItemTotal, 0)
		}
		meals = append(meals, MealTotal{
			MealSlotID: slot.ID,
			Name:       slot.Name,
			Slug:       slot.Slug,
			Ordering:   slot.Ordering,
			Nutrients:  Rollup(slotItems),
			Items:      slotItems,
		})
	}

	return DietDay{
		DayTotal: DayTotalOf(userID, date, totals, latest),
		Username: username,
		Meals:    meals,
	}
}

// GroupByDay rolls up items per date, one DayTotal for every date that has items.
// latestAt resolves the weight reading to use for a given date.
func GroupByDay(userID uuid.UUID, items []LoggedItem, latestAt func(time.Time) *Reading) []DayTotal {
	byDate := make(map[time.Time][]ItemTotal)
	for _, item := range items {
		d := DateOf(item.Date)
		byDate[d] = append(byDate[d], Total(item))
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	days := make([]DayTotal, 0, len(dates))
	for _, d := range dates {
		var latest *Reading
		if latestAt != nil {
			latest = latestAt(d)
		}
		days = append(days, DayTotalOf(userID, d, byDate[d], latest))
	}
	return days
}
