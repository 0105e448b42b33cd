package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"daily-task-management/config"
	_ "daily-task-management/docs" // Swagger docs
	"daily-task-management/internal/httpserver"
	"daily-task-management/internal/stats"
	"daily-task-management/migrations"
	"daily-task-management/pkg/datemath"
	"daily-task-management/pkg/log"
	"daily-task-management/pkg/scope"
)

// @title       Daily Task Management API
// @description Personal task management with daily workload statistics and relative deadline parsing.
// @version     1
// @host        localhost:8080
// @schemes     http

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daily Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping database: %v", err)
	}

	// 4. Migrations
	goose.SetBaseFS(migrations.Embed)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatalf(ctx, "Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		logger.Fatalf(ctx, "Failed to run migrations: %v", err)
	}
	logger.Info(ctx, "Database migrated")

	// 5. Date parser — relative deadlines resolve in the service timezone.
	dates, err := datemath.NewParser(cfg.Stats.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Stats.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 6. Auth tokens
	scopeManager := scope.NewManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	// 7. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		PostgresDB:      db,
		ScopeManager:    scopeManager,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		Dates:           dates,
		Rng:             stats.NewLockedRand(time.Now().UnixNano()),
		ScoreCfg:        stats.DefaultScoreConfig(cfg.Stats.AvailableMinutes),
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to build HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
	logger.Info(ctx, "Bye")
}
