package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/worddee/worddee-api/internal/api"
	apiMiddleware "github.com/worddee/worddee-api/internal/api/middleware"
	"github.com/worddee/worddee-api/internal/api/shared"
)

// serviceInfo is the body of the root endpoint.
type serviceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// Create API handlers using the application's services
	practiceHandler := api.NewPracticeHandler(app.practiceService, app.logger)
	dashboardHandler := api.NewDashboardHandler(app.dashboardService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/practice/word", practiceHandler.GetWord)
		r.Post("/practice/submit", practiceHandler.SubmitPractice)

		r.Get("/dashboard/stats", dashboardHandler.GetStats)
	})

	// Service information endpoint
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, serviceInfo{
			Service: "Worddee Practice API",
			Version: "1.0.0",
			Status:  "running",
			Endpoints: map[string]string{
				"practice":  "/api/practice",
				"dashboard": "/api/dashboard",
			},
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
