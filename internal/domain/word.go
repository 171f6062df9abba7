package domain

import (
	"fmt"
	"time"
)

// DifficultyTier classifies vocabulary words by learner difficulty.
type DifficultyTier string

// Possible difficulty tier values.
const (
	DifficultyBeginner     DifficultyTier = "Beginner"
	DifficultyIntermediate DifficultyTier = "Intermediate"
	DifficultyAdvanced     DifficultyTier = "Advanced"
)

// IsValid reports whether the tier is one of the enumerated values.
func (t DifficultyTier) IsValid() bool {
	switch t {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ParseDifficultyTier converts a string into a DifficultyTier.
// Returns ErrInvalidDifficulty if the value is not one of the enumerated tiers.
func ParseDifficultyTier(s string) (DifficultyTier, error) {
	tier := DifficultyTier(s)
	if !tier.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return tier, nil
}

// Word represents a vocabulary word owned by the external vocabulary
// service. The practice API only reads and forwards it; the external
// service remains the source of truth for word existence.
type Word struct {
	ID              int64          `json:"id"`
	Word            string         `json:"word"`
	Definition      string         `json:"definition"`
	DifficultyLevel DifficultyTier `json:"difficulty_level"`
	CreatedAt       time.Time      `json:"created_at"`
}
