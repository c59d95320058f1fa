// Package main serves the fittrack MCP tools over stdio for local assistants.
// The same server is mounted on the backend at /mcp.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/fittrack/internal/assistant"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/diet"
	"github.com/2beens/fittrack/internal/foods"
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/progress"
	"github.com/2beens/fittrack/internal/savedmeals"
	"github.com/2beens/fittrack/internal/targets"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/training"
	"github.com/2beens/fittrack/internal/users"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	envFile := flag.String("env-file", ".env", "optional dotenv file with secrets")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	if err := godotenv.Load(*envFile); err != nil {
		log.Debugf("no env file loaded: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("FITTRACK_DB_USER"),
		DBPassword: os.Getenv("FITTRACK_DB_PASSWORD"),
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	metricsManager := metrics.NewManager("fittrack_mcp", "main", prometheus.NewRegistry())
	progressRepo := progress.NewRepo(dbPool)
	slots := meals.NewCachedRepo(meals.NewRepo(dbPool), cfg.MealSlotsCacheSizeKB, cfg.MealSlotsCacheTTLSeconds, metricsManager)
	dietService := diet.NewService(
		diet.NewRepo(dbPool),
		foods.NewRepo(dbPool),
		slots,
		progressRepo,
		targets.NewRepo(dbPool),
		savedmeals.NewRepo(dbPool),
	)

	service := assistant.NewContextService(
		assistant.NewPoolSchemaRepo(dbPool),
		users.NewRepo(dbPool),
		dietService,
		profile.NewRepo(dbPool),
		progressRepo,
		training.NewService(training.NewRepo(dbPool)),
	)

	if err := assistant.NewServer(service).Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
