package users

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
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type userScope interface {
	PathUser(r *http.Request) (*User, error)
	SessionUser(r *http.Request) (uuid.UUID, error)
}

type Handler struct {
	repo           usersRepo
	scope          userScope
	metricsManager *metrics.Manager
	hashPassword   func(password string) (string, error)
}

func NewHandler(repo usersRepo, scope userScope, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		scope:          scope,
		metricsManager: metricsManager,
		hashPassword:   pkg.HashPassword,
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		httperr.Write(w, err, "register failed")
		return
	}

	passwordHash, err := handler.hashPassword(req.Password)
	if err != nil {
		httperr.Write(w, err, "register failed")
		return
	}

	user, err := handler.repo.Add(ctx, User{
		Username:  req.Username,
		Email:     req.Email,
		IsPrivate: req.IsPrivate,
	}, passwordHash)
	if err != nil {
		httperr.Write(w, err, "register failed")
		return
	}
	handler.metricsManager.CounterUsersRegistered.Inc()

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal user: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %s", user.Username)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	user, err := handler.scope.PathUser(r)
	if err != nil {
		httperr.Write(w, err, "failed to get user")
		return
	}

	resp := user.Public()
	if sessionUserID, err := handler.scope.SessionUser(r); err == nil && sessionUserID == user.ID {
		resp = *user
	}

	userJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal user: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusOK)
}
