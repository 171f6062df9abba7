package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/worddee/worddee-api/internal/config"
	"github.com/worddee/worddee-api/internal/platform/grader"
	"github.com/worddee/worddee-api/internal/platform/postgres"
	"github.com/worddee/worddee-api/internal/platform/vocab"
	"github.com/worddee/worddee-api/internal/service"
	"github.com/worddee/worddee-api/internal/store"
	"github.com/worddee/worddee-api/internal/validation"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	sessionStore store.SessionStore

	// External clients
	vocabClient *vocab.Client
	grader      validation.SentenceValidator

	// Service interfaces
	practiceService  service.PracticeService
	dashboardService service.DashboardService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization. There are no hidden singletons: everything the handlers
// use is constructed and wired here.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize the session store
	app.sessionStore = postgres.NewPostgresSessionStore(db, logger)

	// Initialize the vocabulary client
	var err error
	app.vocabClient, err = vocab.NewClient(cfg.Vocab, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize vocabulary client: %w", err)
	}
	logger.Info("Vocabulary client initialized", "base_url", cfg.Vocab.BaseURL)

	// Initialize the AI grading client
	app.grader, err = grader.NewWebhook(cfg.Grader, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize grader: %w", err)
	}
	logger.Info("Sentence grader initialized")

	// Initialize services
	app.practiceService, err = service.NewPracticeService(
		app.vocabClient,
		app.grader,
		app.sessionStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize practice service: %w", err)
	}

	app.dashboardService, err = service.NewDashboardService(app.sessionStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dashboard service: %w", err)
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
