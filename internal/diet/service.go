package diet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/foods"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/savedmeals"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type entriesStore interface {
	AddMany(ctx context.Context, entries []Entry) ([]Entry, error)
	Update(ctx context.Context, entry Entry) (*Entry, error)
	Items(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]nutrition.LoggedItem, error)
}

type foodsGetter interface {
	GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]foods.Food, error)
}

type slotsProvider interface {
	List(ctx context.Context) ([]nutrition.MealSlot, error)
	Get(ctx context.Context, id uuid.UUID) (*nutrition.MealSlot, error)
	GetBySlug(ctx context.Context, slug string) (*nutrition.MealSlot, error)
}

type readingsProvider interface {
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]nutrition.Reading, error)
	Latest(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.Reading, error)
}

type targetsProvider interface {
	MacrosRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]nutrition.TargetMacros, error)
}

type savedMealsProvider interface {
	Foods(ctx context.Context, userID, mealID uuid.UUID) ([]savedmeals.MealFood, error)
}

type Service struct {
	store      entriesStore
	foods      foodsGetter
	slots      slotsProvider
	readings   readingsProvider
	targets    targetsProvider
	savedMeals savedMealsProvider
}

func NewService(
	store entriesStore,
	foods foodsGetter,
	slots slotsProvider,
	readings readingsProvider,
	targets targetsProvider,
	savedMeals savedMealsProvider,
) *Service {
	return &Service{
		store:      store,
		foods:      foods,
		slots:      slots,
		readings:   readings,
		targets:    targets,
		savedMeals: savedMeals,
	}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req EntryRequest) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := s.CreateFromFoods(ctx, userID, FromFoodsRequest{
		Date:    req.Date,
		SlotRef: req.SlotRef,
		Foods: []FoodQuantity{{
			FoodID:   req.FoodID,
			Quantity: req.Quantity,
		}},
	})
	if err != nil {
		return nil, err
	}
	return &added[0], nil
}

// CreateFromFoods validates every raw quantity, resolves the slot and the foods and
// stores the normalized entries together.
func (s *Service) CreateFromFoods(ctx context.Context, userID uuid.UUID, req FromFoodsRequest) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.createFromFoods")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(req.Foods)))

	if len(req.Foods) == 0 {
		return nil, &nutrition.ValidationError{Field: "foods", Constraint: "must not be empty"}
	}

	date, err := nutrition.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	for _, f := range req.Foods {
		if err := nutrition.ValidateQuantity(f.Quantity); err != nil {
			return nil, err
		}
	}

	slot, err := s.resolveSlot(ctx, req.SlotRef)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(req.Foods))
	for _, f := range req.Foods {
		ids = append(ids, f.FoodID)
	}
	foodsByID, err := s.foods.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get foods: %w", err)
	}

	entries := make([]Entry, 0, len(req.Foods))
	for _, f := range req.Foods {
		food, ok := foodsByID[f.FoodID]
		if !ok {
			return nil, &nutrition.ValidationError{Field: "food_id", Constraint: "food does not exist"}
		}
		entries = append(entries, Entry{
			UserID:     userID,
			Date:       date,
			MealSlotID: slot.ID,
			FoodID:     food.ID,
			Quantity:   nutrition.Normalize(f.Quantity, food.DataMeasurement),
		})
	}

	return s.store.AddMany(ctx, entries)
}

// CreateFromSavedMeal copies the foods of one of the user's saved meals into the
// diet log. Saved quantities are already normalized and are stored unchanged.
func (s *Service) CreateFromSavedMeal(ctx context.Context, userID uuid.UUID, req FromSavedMealRequest) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.createFromSavedMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMeal.id", req.SavedMealID.String()))

	date, err := nutrition.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	slot, err := s.resolveSlot(ctx, req.SlotRef)
	if err != nil {
		return nil, err
	}

	mealFoods, err := s.savedMeals.Foods(ctx, userID, req.SavedMealID)
	if err != nil {
		return nil, err
	}
	if len(mealFoods) == 0 {
		return nil, &nutrition.ValidationError{Field: "saved_meal_id", Constraint: "saved meal has no foods"}
	}

	entries := make([]Entry, 0, len(mealFoods))
	for _, f := range mealFoods {
		entries = append(entries, Entry{
			UserID:     userID,
			Date:       date,
			MealSlotID: slot.ID,
			FoodID:     f.FoodID,
			Quantity:   f.Quantity,
		})
	}

	return s.store.AddMany(ctx, entries)
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, req EntryRequest) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("diet.id", id.String()))

	date, err := nutrition.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := nutrition.ValidateQuantity(req.Quantity); err != nil {
		return nil, err
	}
	slot, err := s.resolveSlot(ctx, req.SlotRef)
	if err != nil {
		return nil, err
	}
	foodsByID, err := s.foods.GetMany(ctx, []uuid.UUID{req.FoodID})
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}
	food, ok := foodsByID[req.FoodID]
	if !ok {
		return nil, &nutrition.ValidationError{Field: "food_id", Constraint: "food does not exist"}
	}

	return s.store.Update(ctx, Entry{
		ID:         id,
		UserID:     userID,
		Date:       date,
		MealSlotID: slot.ID,
		FoodID:     food.ID,
		Quantity:   nutrition.Normalize(req.Quantity, food.DataMeasurement),
	})
}

func (s *Service) resolveSlot(ctx context.Context, ref SlotRef) (*nutrition.MealSlot, error) {
	var slot *nutrition.MealSlot
	var err error
	switch {
	case ref.MealOfDayID.Valid:
		slot, err = s.slots.Get(ctx, ref.MealOfDayID.UUID)
	case ref.MealOfDaySlug != "":
		slot, err = s.slots.GetBySlug(ctx, ref.MealOfDaySlug)
	default:
		return nil, &nutrition.ValidationError{Field: "meal_of_day", Constraint: "meal_of_day_id or meal_of_day_slug is required"}
	}
	if errors.Is(err, nutrition.ErrNotFound) {
		return nil, &nutrition.ValidationError{Field: "meal_of_day", Constraint: "meal of day does not exist"}
	}
	if err != nil {
		return nil, fmt.Errorf("resolve meal of day: %w", err)
	}
	return slot, nil
}

// Day builds the diet of a single day, one meal entry per known slot.
func (s *Service) Day(ctx context.Context, username string, userID uuid.UUID, date time.Time) (_ *nutrition.DietDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format(nutrition.DateLayout)))

	slots, err := s.slots.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meal slots: %w", err)
	}
	items, err := s.store.Items(ctx, userID, date, date)
	if err != nil {
		return nil, fmt.Errorf("list diet items: %w", err)
	}
	latest, err := s.readings.Latest(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("latest weight: %w", err)
	}

	day := nutrition.BuildDay(username, userID, date, slots, items, latest)
	return &day, nil
}

// Week returns the day totals of the ISO week containing date. Days without
// entries are left out.
func (s *Service) Week(ctx context.Context, userID uuid.UUID, date time.Time) (_ []nutrition.DayTotal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	monday, sunday := nutrition.WeekBounds(date)
	return s.days(ctx, userID, monday, sunday)
}

func (s *Service) WeekTotal(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.WeekSummary, error) {
	days, err := s.Week(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	summary := nutrition.WeekTotal(userID, days, date)
	return &summary, nil
}

func (s *Service) WeekAverage(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.WeekSummary, error) {
	days, err := s.Week(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	summary := nutrition.WeekAverage(userID, days, date)
	return &summary, nil
}

// Month returns the daily series of the month containing date, widened to whole
// ISO weeks, with targets and progress readings next to the intake.
func (s *Service) Month(ctx context.Context, userID uuid.UUID, date time.Time) (_ []nutrition.MonthDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.diet.month")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from, to := nutrition.MonthSpan(date)
	days, err := s.days(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	readings, err := s.readings.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	targets, err := s.targets.MacrosRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}

	return nutrition.MonthSeries(userID, date, days, readings, targets), nil
}

func (s *Service) days(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]nutrition.DayTotal, error) {
	items, err := s.store.Items(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list diet items: %w", err)
	}

	readings, err := s.readings.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	before, err := s.readings.Latest(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("latest weight: %w", err)
	}
	if before != nil && before.Date.Before(from) {
		readings = append(readings, *before)
	}

	latestAt := func(d time.Time) *nutrition.Reading {
		return nutrition.LatestWeight(readings, d)
	}
	return nutrition.GroupByDay(userID, items, latestAt), nil
}
