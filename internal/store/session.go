package store

import (
	"context"

	"github.com/worddee/worddee-api/internal/domain"
)

// SessionAggregate holds the raw aggregate numbers computed over the entire
// session log. The caller derives the modal proficiency level from
// LevelCounts; MeanScore is defined as 0.0 when Count is 0.
type SessionAggregate struct {
	Count       int64
	MeanScore   float64
	LevelCounts map[string]int64
}

// SessionStore defines the interface for practice session persistence.
// Sessions are append-only: they are created exactly once and never
// updated or deleted.
type SessionStore interface {
	// Create saves a new practice session.
	// It handles domain validation internally and assigns the session's ID
	// and creation timestamp; both are set on the passed session before the
	// call returns. The write is durable before the call returns.
	// Returns validation errors from the domain PracticeSession if data is invalid.
	Create(ctx context.Context, session *domain.PracticeSession) error

	// ListRecent retrieves up to limit sessions, most recent first.
	// Sessions sharing a creation timestamp are ordered by descending ID.
	ListRecent(ctx context.Context, limit int) ([]*domain.PracticeSession, error)

	// Aggregate computes the total session count, the mean score over all
	// sessions, and the per-level occurrence counts in a single pass.
	Aggregate(ctx context.Context) (*SessionAggregate, error)
}
