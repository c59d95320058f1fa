package meals

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fittrack/internal/httperr"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type slotsRepo interface {
	List(ctx context.Context) ([]nutrition.MealSlot, error)
	GetBySlug(ctx context.Context, slug string) (*nutrition.MealSlot, error)
}

type Handler struct {
	repo slotsRepo
}

func NewHandler(repo slotsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.list")
	defer span.End()

	slots, err := handler.repo.List(ctx)
	if err != nil {
		httperr.Write(w, err, "failed to get meal slots")
		return
	}

	slotsJson, err := json.Marshal(slots)
	if err != nil {
		log.Errorf("marshal meal slots error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, slotsJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.get")
	defer span.End()

	slot, err := handler.repo.GetBySlug(ctx, mux.Vars(r)["slug"])
	if err != nil {
		httperr.Write(w, err, "failed to get meal slot")
		return
	}

	slotJson, err := json.Marshal(slot)
	if err != nil {
		log.Errorf("marshal meal slot error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, slotJson, http.StatusOK)
}
