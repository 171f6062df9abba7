package api

import (
	"log/slog"
	"net/http"

	"github.com/worddee/worddee-api/internal/api/shared"
	"github.com/worddee/worddee-api/internal/service"
)

// DashboardHandler handles dashboard-related HTTP requests.
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger.With("component", "dashboard_handler"),
	}
}

// GetStats handles GET /api/dashboard/stats requests.
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute dashboard statistics")
		return
	}

	recent := make([]PracticeSessionResponse, 0, len(stats.RecentSessions))
	for _, session := range stats.RecentSessions {
		recent = append(recent, sessionToResponse(session))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DashboardStatsResponse{
		TotalSessions:   stats.TotalSessions,
		AverageScore:    stats.AverageScore,
		MostCommonLevel: stats.MostCommonLevel,
		RecentSessions:  recent,
	})
}
