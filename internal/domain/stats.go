package domain

// NoSessionsLevel is the sentinel reported as the most common level when no
// sessions have been recorded yet.
const NoSessionsLevel = "N/A"

// DashboardStats is the derived summary of all recorded practice sessions.
// It is recomputed on every dashboard request and never stored.
type DashboardStats struct {
	TotalSessions   int64              `json:"total_sessions"`
	AverageScore    float64            `json:"average_score"`
	MostCommonLevel string             `json:"most_common_level"`
	RecentSessions  []*PracticeSession `json:"recent_sessions"`
}
