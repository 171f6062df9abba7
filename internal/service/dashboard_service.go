package service

import (
	"context"
	"log/slog"

	"github.com/worddee/worddee-api/internal/domain"
	"github.com/worddee/worddee-api/internal/store"
)

// RecentSessionsLimit bounds the recent-history panel of the dashboard.
const RecentSessionsLimit = 10

// DashboardService computes the aggregate progress view over the session log.
type DashboardService interface {
	// GetDashboard returns the total session count, mean score, modal
	// proficiency level, and the most recent sessions, newest first.
	// It performs no writes and is safe to call with arbitrary concurrency.
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
}

// dashboardServiceImpl implements the DashboardService interface.
//
// Aggregates are recomputed from the full session log on every request.
// That is fine at this scale; an incremental scheme would only be worth it
// once the session log grows far beyond a single learner's history.
type dashboardServiceImpl struct {
	sessions store.SessionStore
	logger   *slog.Logger
}

// NewDashboardService creates a new DashboardService.
// It returns an error if the session store is nil.
func NewDashboardService(sessions store.SessionStore, logger *slog.Logger) (DashboardService, error) {
	if sessions == nil {
		return nil, &PracticeServiceError{
			Operation: "create_service",
			Message:   "sessions cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &dashboardServiceImpl{
		sessions: sessions,
		logger:   logger.With("component", "dashboard_service"),
	}, nil
}

// GetDashboard assembles the dashboard statistics from the session store.
func (s *dashboardServiceImpl) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	agg, err := s.sessions.Aggregate(ctx)
	if err != nil {
		s.logger.Error("failed to aggregate sessions", "error", err)
		return nil, NewPracticeServiceError("get_dashboard", "failed to aggregate sessions", err)
	}

	recent, err := s.sessions.ListRecent(ctx, RecentSessionsLimit)
	if err != nil {
		s.logger.Error("failed to list recent sessions", "error", err)
		return nil, NewPracticeServiceError("get_dashboard", "failed to list recent sessions", err)
	}

	stats := &domain.DashboardStats{
		TotalSessions:   agg.Count,
		AverageScore:    agg.MeanScore,
		MostCommonLevel: mostCommonLevel(agg.LevelCounts),
		RecentSessions:  recent,
	}

	s.logger.Debug("dashboard computed",
		"total_sessions", stats.TotalSessions,
		"average_score", stats.AverageScore,
		"most_common_level", stats.MostCommonLevel)
	return stats, nil
}

// mostCommonLevel picks the level with the highest occurrence count.
// Ties are broken by the lexicographically smallest level code so the
// result is deterministic; with no sessions the sentinel "N/A" is returned.
func mostCommonLevel(counts map[string]int64) string {
	best := domain.NoSessionsLevel
	var bestCount int64

	for level, count := range counts {
		if count > bestCount || (count == bestCount && bestCount > 0 && level < best) {
			best = level
			bestCount = count
		}
	}
	return best
}
