package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/httperr"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/users"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=profile_mocks_test.go -package=profile_test

type profileRepo interface {
	Add(ctx context.Context, p Profile) (*Profile, error)
	Update(ctx context.Context, p Profile) (*Profile, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*Profile, error)
}

type weightLookup interface {
	Latest(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.Reading, error)
}

type userScope interface {
	PathUser(r *http.Request) (*users.User, error)
	SessionUser(r *http.Request) (uuid.UUID, error)
}

type Handler struct {
	repo    profileRepo
	weights weightLookup
	scope   userScope
	now     func() time.Time
}

func NewHandler(repo profileRepo, weights weightLookup, scope userScope) *Handler {
	return &Handler{
		repo:    repo,
		weights: weights,
		scope:   scope,
		now:     time.Now,
	}
}

// WithClock replaces the clock used for "today".
func (handler *Handler) WithClock(now func() time.Time) *Handler {
	handler.now = now
	return handler
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.create")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "create profile failed")
		return
	}

	p, ok := handler.decodeProfile(w, r)
	if !ok {
		return
	}
	p.UserID = userID

	added, err := handler.repo.Add(ctx, p)
	if err != nil {
		httperr.Write(w, err, "error, failed to create profile")
		return
	}

	log.Debugf("profile created for user %s", userID)
	writeJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	userID, err := handler.scope.SessionUser(r)
	if err != nil {
		httperr.Write(w, err, "update profile failed")
		return
	}

	p, ok := handler.decodeProfile(w, r)
	if !ok {
		return
	}
	p.UserID = userID

	updated, err := handler.repo.Update(ctx, p)
	if err != nil {
		httperr.Write(w, err, "error, failed to update profile")
		return
	}
	writeJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	user, err := handler.scope.PathUser(r)
	if err != nil {
		httperr.Write(w, err, "failed to get user")
		return
	}

	p, err := handler.repo.GetByUser(ctx, user.ID)
	if err != nil {
		httperr.Write(w, err, "failed to get profile")
		return
	}
	writeJSON(w, p, http.StatusOK)
}

// HandleMetrics computes BMI, BMR, TDEE and target calories as of the date query
// parameter, today when it is missing.
func (handler *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.metrics")
	defer span.End()

	user, err := handler.scope.PathUser(r)
	if err != nil {
		httperr.Write(w, err, "failed to get user")
		return
	}

	date := nutrition.DateOf(handler.now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		if date, err = nutrition.ParseDate(raw); err != nil {
			httperr.Write(w, err, "invalid date")
			return
		}
	}

	p, err := handler.repo.GetByUser(ctx, user.ID)
	if err != nil {
		httperr.Write(w, err, "failed to get profile")
		return
	}
	latest, err := handler.weights.Latest(ctx, user.ID, date)
	if err != nil {
		httperr.Write(w, err, "failed to get latest weight")
		return
	}

	writeJSON(w, MetricsOf(user.Username, *p, date, latest), http.StatusOK)
}

func (handler *Handler) decodeProfile(w http.ResponseWriter, r *http.Request) (Profile, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return Profile{}, false
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("profile, unmarshal json params: %s", err)
		http.Error(w, "invalid profile", http.StatusBadRequest)
		return Profile{}, false
	}

	p, err := req.ToProfile(handler.now())
	if err != nil {
		httperr.Write(w, err, "invalid profile")
		return Profile{}, false
	}
	return p, true
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal profile response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}
