package progress

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

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=progress_test

type progressRepo interface {
	Add(ctx context.Context, reading nutrition.Reading) (*nutrition.Reading, error)
	Update(ctx context.Context, reading nutrition.Reading) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	DeleteDates(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]uuid.UUID, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*nutrition.Reading, error)
	GetForDate(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.Reading, error)
	Latest(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.Reading, error)
}

type progressAggregator interface {
	Aggregate(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.ProgressSummary, error)
}

type userScope interface {
	PathUser(r *http.Request) (*users.User, error)
	SessionUser(r *http.Request) (uuid.UUID, error)
}

type DeletedResponse struct {
	Deleted []uuid.UUID `json:"deleted"`
}

type Handler struct {
	repo           progressRepo
	aggregator     progressAggregator
	scope          userScope
	metricsManager *metrics.Manager
}

func NewHandler(
	repo progressRepo,
	aggregator progressAggregator,
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

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.add")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "add progress failed")
		return
	}

	reading, ok := decodeReading(w, r)
	if !ok {
		return
	}
	reading.UserID = userID

	added, err := handler.repo.Add(ctx, reading)
	if err != nil {
		httperr.Write(w, err, "error, failed to add progress")
		return
	}
	span.SetAttributes(attribute.String("progress.id", added.ID.String()))
	handler.metricsManager.CounterProgressReadings.Inc()

	log.Debugf("new progress added for %s: %s", added.Date.Format(nutrition.DateLayout), added.ID)
	writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.update")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "update progress failed")
		return
	}

	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	reading, ok := decodeReading(w, r)
	if !ok {
		return
	}
	reading.ID = id
	reading.UserID = userID

	if err := handler.repo.Update(ctx, reading); err != nil {
		httperr.Write(w, err, "error, failed to update progress")
		return
	}

	updated, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		httperr.Write(w, err, "failed to get updated progress")
		return
	}
	writeJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "get progress failed")
		return
	}

	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	reading, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		httperr.Write(w, err, "failed to get progress")
		return
	}
	writeJSON(w, reading, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.delete")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete progress failed")
		return
	}

	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		httperr.Write(w, err, "progress not deleted")
		return
	}
	writeJSON(w, DeletedResponse{Deleted: []uuid.UUID{id}}, http.StatusOK)
}

func (handler *Handler) HandleDeleteIDRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.deleteIDRange")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete progress failed")
		return
	}

	var req pkg.IDRange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "delete progress failed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.DeleteIDs(ctx, userID, req.IDs)
	if err != nil {
		httperr.Write(w, err, "progress not deleted")
		return
	}
	span.SetAttributes(attribute.Int("deleted", len(deleted)))
	writeJSON(w, DeletedResponse{Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleDeleteDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.deleteDateRange")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete progress failed")
		return
	}

	var req pkg.DateRange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "delete progress failed", http.StatusBadRequest)
		return
	}
	from, to, err := req.Bounds()
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.DeleteDates(ctx, userID, from, to)
	if err != nil {
		httperr.Write(w, err, "progress not deleted")
		return
	}
	span.SetAttributes(attribute.Int("deleted", len(deleted)))
	writeJSON(w, DeletedResponse{Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleGetForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.getForDate")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	reading, err := handler.repo.GetForDate(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get progress")
		return
	}
	writeJSON(w, reading, http.StatusOK)
}

func (handler *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.latest")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	reading, err := handler.repo.Latest(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get latest progress")
		return
	}
	if reading == nil {
		httperr.Write(w, ErrReadingNotFound, "no weight recorded")
		return
	}
	writeJSON(w, reading, http.StatusOK)
}

func (handler *Handler) HandleAggregate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.aggregate")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	summary, err := handler.aggregator.Aggregate(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to aggregate progress")
		return
	}
	writeJSON(w, summary, http.StatusOK)
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

func decodeReading(w http.ResponseWriter, r *http.Request) (nutrition.Reading, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return nutrition.Reading{}, false
	}

	var req ReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("progress, unmarshal json params: %s", err)
		http.Error(w, "invalid progress", http.StatusBadRequest)
		return nutrition.Reading{}, false
	}

	reading, err := req.ToReading()
	if err != nil {
		httperr.Write(w, err, "invalid progress")
		return nutrition.Reading{}, false
	}
	return reading, true
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal progress response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
