// Package main implements the entry point for the Worddee practice API
// server, which serves vocabulary practice submissions, AI sentence
// grading, and progress statistics.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/worddee/worddee-api/internal/config"
	"github.com/worddee/worddee-api/internal/platform/logger"
)

// main is the entry point for the worddee-api server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

// run loads configuration, sets up application components, and serves
// HTTP until a shutdown signal arrives.
func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Backend configuration",
		"database_url_present", cfg.Database.URL != "",
		"vocab_base_url", cfg.Vocab.BaseURL,
		"grader_webhook_present", cfg.Grader.WebhookURL != "")

	db, err := openDatabase(ctx, cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(ctx, db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
