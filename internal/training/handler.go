package training

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/httperr"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/users"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=training_mocks_test.go -package=training_test

type setsRepo interface {
	Add(ctx context.Context, set Set) (*Set, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListForDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]Set, error)
}

type trainingAggregator interface {
	Aggregate(ctx context.Context, userID uuid.UUID, date time.Time) (*Aggregate, error)
}

type userScope interface {
	PathUser(r *http.Request) (*users.User, error)
	SessionUser(r *http.Request) (uuid.UUID, error)
}

type Handler struct {
	repo           setsRepo
	aggregator     trainingAggregator
	scope          userScope
	metricsManager *metrics.Manager
}

func NewHandler(
	repo setsRepo,
	aggregator trainingAggregator,
	scope userScope,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		aggregator:     aggregator,
		scope:          scope,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.addSet")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "add workout set failed")
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("training, unmarshal json params: %s", err)
		http.Error(w, "invalid workout set", http.StatusBadRequest)
		return
	}

	set, err := req.ToSet()
	if err != nil {
		httperr.Write(w, err, "invalid workout set")
		return
	}
	set.UserID = userID

	added, err := handler.repo.Add(ctx, set)
	if err != nil {
		httperr.Write(w, err, "error, failed to add workout set")
		return
	}
	span.SetAttributes(attribute.String("set.id", added.ID.String()))
	handler.metricsManager.CounterWorkoutSets.Inc()

	log.Debugf("new workout set added: %s %s x%d", added.Movement, added.Date.Format(nutrition.DateLayout), added.Reps)
	writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.deleteSet")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete workout set failed")
		return
	}

	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		httperr.Write(w, err, "workout set not deleted")
		return
	}
	writeJSON(w, map[string][]uuid.UUID{"deleted": {id}}, http.StatusOK)
}

func (handler *Handler) HandleListForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.listForDate")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	sets, err := handler.repo.ListForDate(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to list workout sets")
		return
	}
	span.SetAttributes(attribute.Int("count", len(sets)))
	writeJSON(w, sets, http.StatusOK)
}

func (handler *Handler) HandleAggregate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.aggregate")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	agg, err := handler.aggregator.Aggregate(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to aggregate workout sets")
		return
	}
	writeJSON(w, agg, http.StatusOK)
}

func (handler *Handler) userAndDate(w http.ResponseWriter, r *http.Request) (*users.User, time.Time, bool) {
	user, err := handler.scope.PathUser(r)
	if err != nil {
		httperr.Write(w, err, "failed to get user")
		return nil, time.Time{}, false
	}
	date, err := pkg.PathDate(r, "date")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return nil, time.Time{}, false
	}
	return user, date, true
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal training response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
