package api

import (
	"time"

	"github.com/worddee/worddee-api/internal/domain"
)

// PracticeSessionResponse represents the response data for a graded,
// persisted practice session.
type PracticeSessionResponse struct {
	SessionID         int64   `json:"session_id"`
	WordID            int64   `json:"word_id"`
	Sentence          string  `json:"sentence"`
	Score             float64 `json:"score"`
	CEFRLevel         string  `json:"cefr_level"`
	Feedback          string  `json:"feedback"`
	CorrectedSentence *string `json:"corrected_sentence,omitempty"`
	PracticedAt       string  `json:"practiced_at"`
}

// DashboardStatsResponse represents the response data for the dashboard.
type DashboardStatsResponse struct {
	TotalSessions   int64                     `json:"total_sessions"`
	AverageScore    float64                   `json:"average_score"`
	MostCommonLevel string                    `json:"most_common_level"`
	RecentSessions  []PracticeSessionResponse `json:"recent_sessions"`
}

// sessionToResponse converts a domain.PracticeSession to a PracticeSessionResponse.
func sessionToResponse(session *domain.PracticeSession) PracticeSessionResponse {
	return PracticeSessionResponse{
		SessionID:         session.ID,
		WordID:            session.WordID,
		Sentence:          session.Sentence,
		Score:             session.Score,
		CEFRLevel:         string(session.Level),
		Feedback:          session.Feedback,
		CorrectedSentence: session.CorrectedSentence,
		PracticedAt:       session.CreatedAt.UTC().Format(time.RFC3339),
	}
}
