package diet

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

//go:generate mockgen -source=$GOFILE -destination=diet_mocks_test.go -package=diet_test

type dietService interface {
	Create(ctx context.Context, userID uuid.UUID, req EntryRequest) (*Entry, error)
	CreateFromFoods(ctx context.Context, userID uuid.UUID, req FromFoodsRequest) ([]Entry, error)
	CreateFromSavedMeal(ctx context.Context, userID uuid.UUID, req FromSavedMealRequest) ([]Entry, error)
	Update(ctx context.Context, userID, id uuid.UUID, req EntryRequest) (*Entry, error)
	Day(ctx context.Context, username string, userID uuid.UUID, date time.Time) (*nutrition.DietDay, error)
	Week(ctx context.Context, userID uuid.UUID, date time.Time) ([]nutrition.DayTotal, error)
	WeekTotal(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.WeekSummary, error)
	WeekAverage(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.WeekSummary, error)
	Month(ctx context.Context, userID uuid.UUID, date time.Time) ([]nutrition.MonthDay, error)
}

type dietRepo interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*Entry, error)
	List(ctx context.Context, userID uuid.UUID, params ListParams) (_ []Entry, total int, err error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	DeleteDates(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]uuid.UUID, error)
}

type userScope interface {
	PathUser(r *http.Request) (*users.User, error)
	SessionUser(r *http.Request) (uuid.UUID, error)
}

type ListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type DeletedResponse struct {
	Deleted []uuid.UUID `json:"deleted"`
}

type Handler struct {
	service        dietService
	repo           dietRepo
	scope          userScope
	metricsManager *metrics.Manager
}

func NewHandler(service dietService, repo dietRepo, scope userScope, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		repo:           repo,
		scope:          scope,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.create")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "add diet entry failed")
		return
	}

	var req EntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		httperr.Write(w, err, "error, failed to add diet entry")
		return
	}
	span.SetAttributes(attribute.String("diet.id", entry.ID.String()))
	handler.metricsManager.CounterDietEntries.WithLabelValues("create").Inc()

	log.Debugf("new diet entry added: %s", entry.ID)
	writeJSON(w, entry, http.StatusCreated)
}

func (handler *Handler) HandleCreateFromFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.createFromFoods")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "add diet entries failed")
		return
	}

	var req FromFoodsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entries, err := handler.service.CreateFromFoods(ctx, userID, req)
	if err != nil {
		httperr.Write(w, err, "error, failed to add diet entries")
		return
	}
	span.SetAttributes(attribute.Int("count", len(entries)))
	handler.metricsManager.CounterDietEntries.WithLabelValues("create").Add(float64(len(entries)))

	writeJSON(w, entries, http.StatusCreated)
}

func (handler *Handler) HandleCreateFromSavedMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.createFromSavedMeal")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "add diet entries failed")
		return
	}

	var req FromSavedMealRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entries, err := handler.service.CreateFromSavedMeal(ctx, userID, req)
	if err != nil {
		httperr.Write(w, err, "error, failed to add diet entries")
		return
	}
	span.SetAttributes(attribute.Int("count", len(entries)))
	handler.metricsManager.CounterDietEntries.WithLabelValues("create").Add(float64(len(entries)))

	writeJSON(w, entries, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.update")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "update diet entry failed")
		return
	}
	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	var req EntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := handler.service.Update(ctx, userID, id, req)
	if err != nil {
		httperr.Write(w, err, "error, failed to update diet entry")
		return
	}
	handler.metricsManager.CounterDietEntries.WithLabelValues("update").Inc()

	writeJSON(w, entry, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.get")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "get diet entry failed")
		return
	}
	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		httperr.Write(w, err, "failed to get diet entry")
		return
	}
	writeJSON(w, entry, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.list")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "list diet failed")
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

	entries, total, err := handler.repo.List(ctx, userID, ListParams{Page: page, Size: size})
	if err != nil {
		httperr.Write(w, err, "failed to list diet")
		return
	}
	writeJSON(w, ListResponse{Entries: entries, Total: total}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.delete")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete diet entry failed")
		return
	}
	id, err := pkg.PathUUID(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		httperr.Write(w, err, "diet entry not deleted")
		return
	}
	handler.metricsManager.CounterDietEntries.WithLabelValues("delete").Inc()

	writeJSON(w, DeletedResponse{Deleted: []uuid.UUID{id}}, http.StatusOK)
}

func (handler *Handler) HandleDeleteIDRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.deleteIDRange")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete diet entries failed")
		return
	}

	var req pkg.IDRange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "delete diet entries failed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.DeleteIDs(ctx, userID, req.IDs)
	if err != nil {
		httperr.Write(w, err, "diet entries not deleted")
		return
	}
	handler.metricsManager.CounterDietEntries.WithLabelValues("delete").Add(float64(len(deleted)))

	writeJSON(w, DeletedResponse{Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleDeleteDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.deleteDateRange")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "delete diet entries failed")
		return
	}

	var req pkg.DateRange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "delete diet entries failed", http.StatusBadRequest)
		return
	}
	from, to, err := req.Bounds()
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.DeleteDates(ctx, userID, from, to)
	if err != nil {
		httperr.Write(w, err, "diet entries not deleted")
		return
	}
	handler.metricsManager.CounterDietEntries.WithLabelValues("delete").Add(float64(len(deleted)))

	writeJSON(w, DeletedResponse{Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.day")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	day, err := handler.service.Day(ctx, user.Username, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get diet day")
		return
	}
	writeJSON(w, day, http.StatusOK)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.week")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	days, err := handler.service.Week(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get diet week")
		return
	}
	writeJSON(w, days, http.StatusOK)
}

func (handler *Handler) HandleWeekTotal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.weekTotal")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	summary, err := handler.service.WeekTotal(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get diet week total")
		return
	}
	writeJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleWeekAverage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.weekAverage")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	summary, err := handler.service.WeekAverage(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get diet week average")
		return
	}
	writeJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diet.month")
	defer span.End()

	user, date, ok := handler.userAndDate(w, r)
	if !ok {
		return
	}

	series, err := handler.service.Month(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get diet month")
		return
	}
	writeJSON(w, series, http.StatusOK)
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

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("diet, unmarshal json params: %s", err)
		http.Error(w, "invalid diet entry", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal diet response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
