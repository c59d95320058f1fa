package foods

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fittrack/internal/httperr"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=foods_mocks_test.go -package=foods_test

type foodsRepo interface {
	Add(ctx context.Context, food Food) (*Food, error)
	Get(ctx context.Context, id uuid.UUID) (*Food, error)
	List(ctx context.Context, params ListParams) (_ []Food, total int, err error)
	Update(ctx context.Context, food Food) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sessionResolver interface {
	SessionUser(r *http.Request) (uuid.UUID, error)
}

type ListResponse struct {
	Foods []Food `json:"foods"`
	Total int    `json:"total"`
}

type DeleteFoodResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	repo     foodsRepo
	sessions sessionResolver
}

func NewHandler(repo foodsRepo, sessions sessionResolver) *Handler {
	return &Handler{
		repo:     repo,
		sessions: sessions,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.add")
	defer span.End()

	userID, err := handler.sessions.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "add food failed")
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req FoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new food, unmarshal json params: %s", err)
		http.Error(w, "add food failed", http.StatusBadRequest)
		return
	}

	food, err := req.ToFood()
	if err != nil {
		httperr.Write(w, err, "add food failed")
		return
	}
	food.CreatedBy = userID

	added, err := handler.repo.Add(ctx, food)
	if err != nil {
		httperr.Write(w, err, "error, failed to add new food")
		return
	}
	span.SetAttributes(attribute.String("food.id", added.ID.String()))

	foodJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new food: %s", err)
		http.Error(w, "error, failed to add new food", http.StatusInternalServerError)
		return
	}

	log.Debugf("new food added: %s [%s]", added.Name, added.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.get")
	defer span.End()

	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	food, err := handler.repo.Get(ctx, id)
	if err != nil {
		httperr.Write(w, err, "failed to get food")
		return
	}

	foodJson, err := json.Marshal(food)
	if err != nil {
		log.Errorf("failed to marshal food: %s", err)
		http.Error(w, "failed to marshal food", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.list")
	defer span.End()

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

	foods, total, err := handler.repo.List(ctx, ListParams{
		Query: r.URL.Query().Get("q"),
		Page:  page,
		Size:  size,
	})
	if err != nil {
		httperr.Write(w, err, "failed to get foods")
		return
	}

	respJson, err := json.Marshal(ListResponse{
		Foods: foods,
		Total: total,
	})
	if err != nil {
		log.Errorf("marshal foods error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.update")
	defer span.End()

	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req FoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update food, unmarshal json params: %s", err)
		http.Error(w, "update food failed", http.StatusBadRequest)
		return
	}

	food, err := req.ToFood()
	if err != nil {
		httperr.Write(w, err, "update food failed")
		return
	}
	food.ID = id

	if err := handler.repo.Update(ctx, food); err != nil {
		httperr.Write(w, err, "error, failed to update food")
		return
	}

	updated, err := handler.repo.Get(ctx, id)
	if err != nil {
		httperr.Write(w, err, "failed to get updated food")
		return
	}

	foodJson, err := json.Marshal(updated)
	if err != nil {
		log.Errorf("failed to marshal food: %s", err)
		http.Error(w, "failed to marshal food", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.delete")
	defer span.End()

	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		httperr.Write(w, err, "food not deleted")
		return
	}

	deleteRespJson, err := json.Marshal(DeleteFoodResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
