package targets

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

//go:generate mockgen -source=$GOFILE -destination=targets_mocks_test.go -package=targets_test

type targetsRepo interface {
	Add(ctx context.Context, target DietTarget) (*DietTarget, error)
	Update(ctx context.Context, target DietTarget) (*DietTarget, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	DeleteDates(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]uuid.UUID, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*DietTarget, error)
	GetForDate(ctx context.Context, userID uuid.UUID, date time.Time) (*DietTarget, error)
	Latest(ctx context.Context, userID uuid.UUID, date time.Time) (*DietTarget, error)
}

type weekAggregator interface {
	Week(ctx context.Context, userID uuid.UUID, date time.Time) ([]nutrition.DayTotal, error)
	WeekTotal(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.WeekSummary, error)
	WeekAverage(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.WeekSummary, error)
}

type userScope interface {
	PathUser(r *http.Request) (*users.User, error)
	SessionUser(r *http.Request) (uuid.UUID, error)
}

type DeletedResponse struct {
	Deleted []uuid.UUID `json:"deleted"`
}

type Handler struct {
	repo           targetsRepo
	weeks          weekAggregator
	scope          userScope
	metricsManager *metrics.Manager
}

func NewHandler(repo targetsRepo, weeks weekAggregator, scope userScope, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		weeks:          weeks,
		scope:          scope,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.add")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "add diet target failed")
		return
	}

	target, ok := decodeTarget(w, r)
	if !ok {
		return
	}
	target.UserID = userID

	added, err := handler.repo.Add(ctx, target)
	if err != nil {
		httperr.Write(w, err, "error, failed to add diet target")
		return
	}
	span.SetAttributes(attribute.String("target.id", added.ID.String()))
	handler.metricsManager.CounterDietTargets.WithLabelValues("create").Inc()

	log.Debugf("new diet target for %s: %d kcal", added.Date.Format(nutrition.DateLayout), added.Energy)
	writeJSON(w, added.View(), http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.update")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "update diet target failed")
		return
	}
	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	target, ok := decodeTarget(w, r)
	if !ok {
		return
	}
	target.ID = id
	target.UserID = userID

	updated, err := handler.repo.Update(ctx, target)
	if err != nil {
		httperr.Write(w, err, "error, failed to update diet target")
		return
	}
	handler.metricsManager.CounterDietTargets.WithLabelValues("update").Inc()

	writeJSON(w, updated.View(), http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.get")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "get diet target failed")
		return
	}
	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	target, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		httperr.Write(w, err, "failed to get diet target")
		return
	}
	writeJSON(w, target.View(), http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.delete")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete diet target failed")
		return
	}
	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		httperr.Write(w, err, "diet target not deleted")
		return
	}
	handler.metricsManager.CounterDietTargets.WithLabelValues("delete").Inc()

	writeJSON(w, DeletedResponse{Deleted: []uuid.UUID{id}}, http.StatusOK)
}

func (handler *Handler) HandleDeleteIDRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.deleteIDRange")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete diet targets failed")
		return
	}

	var req pkg.IDRange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "delete diet targets failed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.DeleteIDs(ctx, userID, req.IDs)
	if err != nil {
		httperr.Write(w, err, "diet targets not deleted")
		return
	}
	handler.metricsManager.CounterDietTargets.WithLabelValues("delete").Add(float64(len(deleted)))

	writeJSON(w, DeletedResponse{Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleDeleteDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.deleteDateRange")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete diet targets failed")
		return
	}

	var req pkg.DateRange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "delete diet targets failed", http.StatusBadRequest)
		return
	}
	from, to, err := req.Bounds()
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.DeleteDates(ctx, userID, from, to)
	if err != nil {
		httperr.Write(w, err, "diet targets not deleted")
		return
	}
	handler.metricsManager.CounterDietTargets.WithLabelValues("delete").Add(float64(len(deleted)))

	writeJSON(w, DeletedResponse{Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleGetForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.getForDate")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	target, err := handler.repo.GetForDate(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get diet target")
		return
	}
	writeJSON(w, target.View(), http.StatusOK)
}

func (handler *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.latest")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	target, err := handler.repo.Latest(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get latest diet target")
		return
	}
	writeJSON(w, target.View(), http.StatusOK)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.week")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	days, err := handler.weeks.Week(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get diet targets week")
		return
	}
	writeJSON(w, days, http.StatusOK)
}

func (handler *Handler) HandleWeekTotal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.weekTotal")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	summary, err := handler.weeks.WeekTotal(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get diet targets week total")
		return
	}
	writeJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleWeekAverage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.targets.weekAverage")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	summary, err := handler.weeks.WeekAverage(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get diet targets week average")
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

func decodeTarget(w http.ResponseWriter, r *http.Request) (DietTarget, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return DietTarget{}, false
	}

	var req TargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("diet target, unmarshal json params: %s", err)
		http.Error(w, "invalid diet target", http.StatusBadRequest)
		return DietTarget{}, false
	}

	target, err := req.ToTarget()
	if err != nil {
		httperr.Write(w, err, "invalid diet target")
		return DietTarget{}, false
	}
	return target, true
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal diet target response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
