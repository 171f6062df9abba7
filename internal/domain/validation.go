package domain

import "fmt"

// CEFRLevel is the six-point ordinal proficiency scale used to classify
// sentence quality.
type CEFRLevel string

// Possible CEFR level values, lowest to highest.
const (
	LevelA1 CEFRLevel = "A1"
	LevelA2 CEFRLevel = "A2"
	LevelB1 CEFRLevel = "B1"
	LevelB2 CEFRLevel = "B2"
	LevelC1 CEFRLevel = "C1"
	LevelC2 CEFRLevel = "C2"
)

// IsValid reports whether the level is one of the six CEFR values.
func (l CEFRLevel) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// ParseCEFRLevel converts a string into a CEFRLevel.
// Returns ErrInvalidCEFRLevel if the value is not one of the six codes.
func ParseCEFRLevel(s string) (CEFRLevel, error) {
	level := CEFRLevel(s)
	if !level.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCEFRLevel, s)
	}
	return level, nil
}

// Score bounds for validation results.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// ValidationResult is the graded assessment of a single submitted sentence.
// It is produced per submission and folded into a PracticeSession rather
// than persisted on its own.
type ValidationResult struct {
	Score             float64   `json:"score"`
	Level             CEFRLevel `json:"cefr_level"`
	Feedback          string    `json:"feedback"`
	CorrectedSentence *string   `json:"corrected_sentence,omitempty"`
}

// Validate checks if the ValidationResult has valid data.
// Score and level must always be present and in range; feedback must be
// non-empty; the corrected sentence is optional.
func (r *ValidationResult) Validate() error {
	if r.Score < MinScore || r.Score > MaxScore {
		return fmt.Errorf("%w: %g", ErrInvalidScore, r.Score)
	}
	if !r.Level.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCEFRLevel, r.Level)
	}
	if r.Feedback == "" {
		return ErrEmptyFeedback
	}
	return nil
}
