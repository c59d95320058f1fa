package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/fittrack/internal/assistant"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/diet"
	"github.com/2beens/fittrack/internal/foods"
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/misc"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/progress"
	"github.com/2beens/fittrack/internal/savedmeals"
	"github.com/2beens/fittrack/internal/targets"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/training"
	"github.com/2beens/fittrack/internal/users"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBUser                  string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.DBUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack-backend", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  auth.NewAuthService(users.NewRepo(dbPool), auth.DefaultTTL, rdb),
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	usersRepo := users.NewRepo(s.dbPool)
	scope := users.NewScope(usersRepo, s.loginChecker)
	foodsRepo := foods.NewRepo(s.dbPool)
	progressRepo := progress.NewRepo(s.dbPool)
	targetsRepo := targets.NewRepo(s.dbPool)
	profileRepo := profile.NewRepo(s.dbPool)
	mealSlots := meals.NewCachedRepo(
		meals.NewRepo(s.dbPool),
		s.config.MealSlotsCacheSizeKB,
		s.config.MealSlotsCacheTTLSeconds,
		s.metricsManager,
	)
	savedMealsRepo := savedmeals.NewRepo(s.dbPool)
	dietRepo := diet.NewRepo(s.dbPool)
	dietService := diet.NewService(dietRepo, foodsRepo, mealSlots, progressRepo, targetsRepo, savedMealsRepo)
	trainingService := training.NewService(training.NewRepo(s.dbPool))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService, s.metricsManager)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin)

	usersHandler := users.NewHandler(usersRepo, scope, s.metricsManager)
	r.HandleFunc("/users", usersHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register-user")
	r.HandleFunc("/users/{username}", usersHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-user")

	foodsHandler := foods.NewHandler(foodsRepo, scope)
	r.HandleFunc("/foods", foodsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-food")
	r.HandleFunc("/foods/list/page/{page}/size/{size}", foodsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-foods")
	r.HandleFunc("/foods/{id}", foodsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-food")
	r.HandleFunc("/foods/{id}", foodsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-food")
	r.HandleFunc("/foods/{id}", foodsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-food")

	mealsHandler := meals.NewHandler(mealSlots)
	r.HandleFunc("/meals", mealsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-meals")
	r.HandleFunc("/meals/{slug}", mealsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-meal")

	dietHandler := diet.NewHandler(dietService, dietRepo, scope, s.metricsManager)
	r.HandleFunc("/diet", dietHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-diet")
	r.HandleFunc("/diet/create-from-foods", dietHandler.HandleCreateFromFoods).Methods("POST", "OPTIONS").Name("new-diet-from-foods")
	r.HandleFunc("/diet/create-from-saved-meal", dietHandler.HandleCreateFromSavedMeal).Methods("POST", "OPTIONS").Name("new-diet-from-saved-meal")
	r.HandleFunc("/diet/list/page/{page}/size/{size}", dietHandler.HandleList).Methods("GET", "OPTIONS").Name("list-diet")
	r.HandleFunc("/diet/delete-id-range", dietHandler.HandleDeleteIDRange).Methods("DELETE", "OPTIONS").Name("delete-diet-ids")
	r.HandleFunc("/diet/delete-date-range", dietHandler.HandleDeleteDateRange).Methods("DELETE", "OPTIONS").Name("delete-diet-dates")
	r.HandleFunc("/diet/{id}", dietHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-diet")
	r.HandleFunc("/diet/{id}", dietHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-diet")
	r.HandleFunc("/diet/{id}", dietHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-diet")
	r.HandleFunc("/diet/{username}/{date}", dietHandler.HandleDay).Methods("GET", "OPTIONS").Name("diet-day")
	r.HandleFunc("/diet/{username}/{date}/week", dietHandler.HandleWeek).Methods("GET", "OPTIONS").Name("diet-week")
	r.HandleFunc("/diet/{username}/{date}/week-total", dietHandler.HandleWeekTotal).Methods("GET", "OPTIONS").Name("diet-week-total")
	r.HandleFunc("/diet/{username}/{date}/week-average", dietHandler.HandleWeekAverage).Methods("GET", "OPTIONS").Name("diet-week-average")
	r.HandleFunc("/diet/{username}/{date}/day-total", dietHandler.HandleMonth).Methods("GET", "OPTIONS").Name("diet-month")

	savedMealsHandler := savedmeals.NewHandler(savedmeals.NewService(savedMealsRepo, foodsRepo), savedMealsRepo, scope, s.metricsManager)
	r.HandleFunc("/saved-meals", savedMealsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-saved-meal")
	r.HandleFunc("/saved-meals/create-from-diet", savedMealsHandler.HandleCreateFromDiet).Methods("POST", "OPTIONS").Name("new-saved-meal-from-diet")
	r.HandleFunc("/saved-meals/list/page/{page}/size/{size}", savedMealsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-saved-meals")
	r.HandleFunc("/saved-meals/delete-id-range", savedMealsHandler.HandleDeleteIDRange).Methods("DELETE", "OPTIONS").Name("delete-saved-meal-ids")
	r.HandleFunc("/saved-meals/foods/{id}", savedMealsHandler.HandleUpdateFood).Methods("PUT", "OPTIONS").Name("update-saved-meal-food")
	r.HandleFunc("/saved-meals/foods/{id}", savedMealsHandler.HandleDeleteFood).Methods("DELETE", "OPTIONS").Name("delete-saved-meal-food")
	r.HandleFunc("/saved-meals/{id}", savedMealsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-saved-meal")
	r.HandleFunc("/saved-meals/{id}", savedMealsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-saved-meal")
	r.HandleFunc("/saved-meals/{id}", savedMealsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-saved-meal")
	r.HandleFunc("/saved-meals/{id}/foods", savedMealsHandler.HandleAddFood).Methods("POST", "OPTIONS").Name("new-saved-meal-food")

	progressHandler := progress.NewHandler(progressRepo, progress.NewService(progressRepo), scope, s.metricsManager)
	r.HandleFunc("/progress", progressHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-progress")
	r.HandleFunc("/progress/delete-id-range", progressHandler.HandleDeleteIDRange).Methods("DELETE", "OPTIONS").Name("delete-progress-ids")
	r.HandleFunc("/progress/delete-date-range", progressHandler.HandleDeleteDateRange).Methods("DELETE", "OPTIONS").Name("delete-progress-dates")
	r.HandleFunc("/progress/{id}", progressHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-progress")
	r.HandleFunc("/progress/{id}", progressHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-progress")
	r.HandleFunc("/progress/{id}", progressHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-progress")
	r.HandleFunc("/progress/{username}/{date}", progressHandler.HandleGetForDate).Methods("GET", "OPTIONS").Name("progress-for-date")
	r.HandleFunc("/progress/{username}/{date}/latest", progressHandler.HandleLatest).Methods("GET", "OPTIONS").Name("progress-latest")
	r.HandleFunc("/progress/{username}/{date}/aggregate", progressHandler.HandleAggregate).Methods("GET", "OPTIONS").Name("progress-aggregate")

	profileHandler := profile.NewHandler(profileRepo, progressRepo, scope)
	r.HandleFunc("/profile", profileHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-profile")
	r.HandleFunc("/profile", profileHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
	r.HandleFunc("/profile/{username}", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile/{username}/metrics", profileHandler.HandleMetrics).Methods("GET", "OPTIONS").Name("profile-metrics")

	targetsHandler := targets.NewHandler(targetsRepo, targets.NewService(targetsRepo), scope, s.metricsManager)
	r.HandleFunc("/targets", targetsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-target")
	r.HandleFunc("/targets/delete-id-range", targetsHandler.HandleDeleteIDRange).Methods("DELETE", "OPTIONS").Name("delete-target-ids")
	r.HandleFunc("/targets/delete-date-range", targetsHandler.HandleDeleteDateRange).Methods("DELETE", "OPTIONS").Name("delete-target-dates")
	r.HandleFunc("/targets/{id}", targetsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-target")
	r.HandleFunc("/targets/{id}", targetsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-target")
	r.HandleFunc("/targets/{id}", targetsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-target")
	r.HandleFunc("/targets/{username}/{date}", targetsHandler.HandleGetForDate).Methods("GET", "OPTIONS").Name("target-for-date")
	r.HandleFunc("/targets/{username}/{date}/latest", targetsHandler.HandleLatest).Methods("GET", "OPTIONS").Name("target-latest")
	r.HandleFunc("/targets/{username}/{date}/week", targetsHandler.HandleWeek).Methods("GET", "OPTIONS").Name("target-week")
	r.HandleFunc("/targets/{username}/{date}/week-total", targetsHandler.HandleWeekTotal).Methods("GET", "OPTIONS").Name("target-week-total")
	r.HandleFunc("/targets/{username}/{date}/week-average", targetsHandler.HandleWeekAverage).Methods("GET", "OPTIONS").Name("target-week-average")

	trainingHandler := training.NewHandler(training.NewRepo(s.dbPool), trainingService, scope, s.metricsManager)
	r.HandleFunc("/training/sets", trainingHandler.HandleAddSet).Methods("POST", "OPTIONS").Name("new-workout-set")
	r.HandleFunc("/training/sets/{id}", trainingHandler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-workout-set")
	r.HandleFunc("/training/{username}/{date}", trainingHandler.HandleListForDate).Methods("GET", "OPTIONS").Name("workout-sets-for-date")
	r.HandleFunc("/training/{username}/{date}/aggregate", trainingHandler.HandleAggregate).Methods("GET", "OPTIONS").Name("training-aggregate")

	mcpServer := assistant.NewServer(assistant.NewContextService(
		assistant.NewPoolSchemaRepo(s.dbPool),
		usersRepo,
		dietService,
		profileRepo,
		progressRepo,
		trainingService,
	))
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)
	r.Handle("/mcp", otelhttp.NewHandler(mcpHandler, "mcp")).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.RequestBody(middleware.DefaultMaxBodyBytes))

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	go s.cleanSessions(ctx, sessionsCleanupInterval)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// cleanSessions removes expired login sessions from redis until ctx is done.
func (s *Server) cleanSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.authService.ScanAndClean(ctx)
		}
	}
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	for _, e := range multierr.Errors(err) {
		log.Errorf(" >>> shutdown: %s", e)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
