package savedmeals

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/foods"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type mealsStore interface {
	Add(ctx context.Context, meal SavedMeal) (*SavedMeal, error)
	Update(ctx context.Context, meal SavedMeal) (*SavedMeal, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*SavedMeal, error)
	AddFood(ctx context.Context, userID uuid.UUID, food MealFood) (*MealFood, error)
	UpdateFood(ctx context.Context, userID uuid.UUID, food MealFood) (*MealFood, error)
	Items(ctx context.Context, userID, mealID uuid.UUID) ([]nutrition.LoggedItem, error)
	CreateFromDiet(ctx context.Context, meal SavedMeal, dietIDs []uuid.UUID) (*SavedMeal, error)
}

type foodsGetter interface {
	GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]foods.Food, error)
}

type Service struct {
	store mealsStore
	foods foodsGetter
}

func NewService(store mealsStore, foods foodsGetter) *Service {
	return &Service{
		store: store,
		foods: foods,
	}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, req Request) (_ *SavedMeal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.savedMeals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name, err := NormalizeName(req.Name)
	if err != nil {
		return nil, err
	}
	return s.store.Add(ctx, SavedMeal{UserID: userID, Name: name})
}

func (s *Service) Rename(ctx context.Context, userID, id uuid.UUID, req Request) (_ *SavedMeal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.savedMeals.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMeal.id", id.String()))

	name, err := NormalizeName(req.Name)
	if err != nil {
		return nil, err
	}
	return s.store.Update(ctx, SavedMeal{ID: id, UserID: userID, Name: name})
}

// Detail loads the saved meal and rolls its foods up into meal totals.
func (s *Service) Detail(ctx context.Context, userID, id uuid.UUID) (_ *Detail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.savedMeals.detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMeal.id", id.String()))

	meal, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	items, err := s.store.Items(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get saved meal foods: %w", err)
	}
	return newDetail(*meal, items), nil
}

func (s *Service) AddFood(ctx context.Context, userID, mealID uuid.UUID, req FoodRequest) (_ *MealFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.savedMeals.addFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMeal.id", mealID.String()))

	food, err := s.normalize(ctx, req)
	if err != nil {
		return nil, err
	}
	food.MealID = mealID
	return s.store.AddFood(ctx, userID, *food)
}

func (s *Service) UpdateFood(ctx context.Context, userID, id uuid.UUID, req FoodRequest) (_ *MealFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.savedMeals.updateFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("savedMealFood.id", id.String()))

	food, err := s.normalize(ctx, req)
	if err != nil {
		return nil, err
	}
	food.ID = id
	return s.store.UpdateFood(ctx, userID, *food)
}

func (s *Service) CreateFromDiet(ctx context.Context, userID uuid.UUID, req FromDietRequest) (_ *SavedMeal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.savedMeals.createFromDiet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(req.DietIDs)))

	name, err := NormalizeName(req.Name)
	if err != nil {
		return nil, err
	}
	if len(req.DietIDs) == 0 {
		return nil, &nutrition.ValidationError{Field: "id_range", Constraint: "must not be empty"}
	}
	return s.store.CreateFromDiet(ctx, SavedMeal{UserID: userID, Name: name}, req.DietIDs)
}

// normalize validates the raw quantity and converts it by the food's unit.
func (s *Service) normalize(ctx context.Context, req FoodRequest) (*MealFood, error) {
	if err := nutrition.ValidateQuantity(req.Quantity); err != nil {
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
	return &MealFood{
		FoodID:   food.ID,
		Quantity: nutrition.Normalize(req.Quantity, food.DataMeasurement),
	}, nil
}
