package savedmeals

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fittrack/internal/httperr"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=savedmeals_mocks_test.go -package=savedmeals_test

type savedMealsService interface {
	Create(ctx context.Context, userID uuid.UUID, req Request) (*SavedMeal, error)
	Rename(ctx context.Context, userID, id uuid.UUID, req Request) (*SavedMeal, error)
	Detail(ctx context.Context, userID, id uuid.UUID) (*Detail, error)
	AddFood(ctx context.Context, userID, mealID uuid.UUID, req FoodRequest) (*MealFood, error)
	UpdateFood(ctx context.Context, userID, id uuid.UUID, req FoodRequest) (*MealFood, error)
	CreateFromDiet(ctx context.Context, userID uuid.UUID, req FromDietRequest) (*SavedMeal, error)
}

type savedMealsRepo interface {
	List(ctx context.Context, userID uuid.UUID, params ListParams) (_ []SavedMeal, total int, err error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	DeleteFood(ctx context.Context, userID, id uuid.UUID) error
}

type sessionScope interface {
	SessionUser(r *http.Request) (uuid.UUID, error)
}

type ListResponse struct {
	SavedMeals []SavedMeal `json:"saved_meals"`
	Total      int         `json:"total"`
}

type DeletedResponse struct {
	Deleted []uuid.UUID `json:"deleted"`
}

type Handler struct {
	service        savedMealsService
	repo           savedMealsRepo
	scope          sessionScope
	metricsManager *metrics.Manager
}

func NewHandler(service savedMealsService, repo savedMealsRepo, scope sessionScope, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		repo:           repo,
		scope:          scope,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.savedMeals.create")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "add saved meal failed")
		return
	}

	var req Request
	if !decodeJSON(w, r, &req) {
		return
	}

	meal, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		httperr.Write(w, err, "error, failed to add saved meal")
		return
	}
	span.SetAttributes(attribute.String("savedMeal.id", meal.ID.String()))
	handler.metricsManager.CounterSavedMeals.WithLabelValues("create").Inc()

	log.Debugf("new saved meal added: %s", meal.ID)
	writeJSON(w, meal, http.StatusCreated)
}

func (handler *Handler) HandleCreateFromDiet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.savedMeals.createFromDiet")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "add saved meal failed")
		return
	}

	var req FromDietRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	meal, err := handler.service.CreateFromDiet(ctx, userID, req)
	if err != nil {
		httperr.Write(w, err, "error, failed to save meal from diet")
		return
	}
	handler.metricsManager.CounterSavedMeals.WithLabelValues("create").Inc()

	writeJSON(w, meal, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.savedMeals.get")
	defer span.End()

	userID, id, ok := handler.userAndID(w, r, "get saved meal failed")
	if !ok {
		return
	}

	detail, err := handler.service.Detail(ctx, userID, id)
	if err != nil {
		httperr.Write(w, err, "failed to get saved meal")
		return
	}
	writeJSON(w, detail, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.savedMeals.update")
	defer span.End()

	userID, id, ok := handler.userAndID(w, r, "update saved meal failed")
	if !ok {
		return
	}

	var req Request
	if !decodeJSON(w, r, &req) {
		return
	}

	meal, err := handler.service.Rename(ctx, userID, id, req)
	if err != nil {
		httperr.Write(w, err, "error, failed to update saved meal")
		return
	}
	handler.metricsManager.CounterSavedMeals.WithLabelValues("update").Inc()

	writeJSON(w, meal, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.savedMeals.list")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "list saved meals failed")
		return
	}
	page, err := pkg.PathInt(r, "page")
	if err != nil {
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := pkg.PathInt(r, "size")
	if err != nil {
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	meals, total, err := handler.repo.List(ctx, userID, ListParams{Page: page, Size: size})
	if err != nil {
		httperr.Write(w, err, "failed to list saved meals")
		return
	}
	writeJSON(w, ListResponse{SavedMeals: meals, Total: total}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.savedMeals.delete")
	defer span.End()

	userID, id, ok := handler.userAndID(w, r, "delete saved meal failed")
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		httperr.Write(w, err, "saved meal not deleted")
		return
	}
	handler.metricsManager.CounterSavedMeals.WithLabelValues("delete").Inc()

	writeJSON(w, DeletedResponse{Deleted: []uuid.UUID{id}}, http.StatusOK)
}

func (handler *Handler) HandleDeleteIDRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.savedMeals.deleteIDRange")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete saved meals failed")
		return
	}

	var req pkg.IDRange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "delete saved meals failed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.DeleteIDs(ctx, userID, req.IDs)
	if err != nil {
		httperr.Write(w, err, "saved meals not deleted")
		return
	}
	handler.metricsManager.CounterSavedMeals.WithLabelValues("delete").Add(float64(len(deleted)))

	writeJSON(w, DeletedResponse{Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.savedMeals.addFood")
	defer span.End()

	userID, mealID, ok := handler.userAndID(w, r, "add saved meal food failed")
	if !ok {
		return
	}

	var req FoodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	food, err := handler.service.AddFood(ctx, userID, mealID, req)
	if err != nil {
		httperr.Write(w, err, "error, failed to add saved meal food")
		return
	}
	writeJSON(w, food, http.StatusCreated)
}

func (handler *Handler) HandleUpdateFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.savedMeals.updateFood")
	defer span.End()

	userID, id, ok := handler.userAndID(w, r, "update saved meal food failed")
	if !ok {
		return
	}

	var req FoodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	food, err := handler.service.UpdateFood(ctx, userID, id, req)
	if err != nil {
		httperr.Write(w, err, "error, failed to update saved meal food")
		return
	}
	writeJSON(w, food, http.StatusOK)
}

func (handler *Handler) HandleDeleteFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.savedMeals.deleteFood")
	defer span.End()

	userID, id, ok := handler.userAndID(w, r, "delete saved meal food failed")
	if !ok {
		return
	}

	if err := handler.repo.DeleteFood(ctx, userID, id); err != nil {
		httperr.Write(w, err, "saved meal food not deleted")
		return
	}
	writeJSON(w, DeletedResponse{Deleted: []uuid.UUID{id}}, http.StatusOK)
}

func (handler *Handler) userAndID(w http.ResponseWriter, r *http.Request, failMsg string) (uuid.UUID, uuid.UUID, bool) {
	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, failMsg)
		return uuid.Nil, uuid.Nil, false
	}
	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("saved meals, unmarshal json params: %s", err)
		http.Error(w, "invalid saved meal", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal saved meal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
