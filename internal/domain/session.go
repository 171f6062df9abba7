package domain

import (
	"fmt"
	"strings"
	"time"
)

// PracticeSession is one immutable record of a single graded practice
// attempt. The store assigns the identifier and creation timestamp at
// persistence time; sessions are never updated and never deleted.
type PracticeSession struct {
	ID                int64     `json:"session_id"`
	WordID            int64     `json:"word_id"`
	Sentence          string    `json:"sentence"`
	Score             float64   `json:"score"`
	Level             CEFRLevel `json:"cefr_level"`
	Feedback          string    `json:"feedback"`
	CorrectedSentence *string   `json:"corrected_sentence,omitempty"`
	CreatedAt         time.Time `json:"practiced_at"`
}

// NewPracticeSession builds a PracticeSession from a submitted sentence and
// the validation result for it. ID and CreatedAt are left zero; the session
// store fills them when the record is persisted.
// Returns an error if validation fails.
func NewPracticeSession(wordID int64, sentence string, result *ValidationResult) (*PracticeSession, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: validation result is required", ErrValidation)
	}

	session := &PracticeSession{
		WordID:            wordID,
		Sentence:          sentence,
		Score:             result.Score,
		Level:             result.Level,
		Feedback:          result.Feedback,
		CorrectedSentence: result.CorrectedSentence,
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the PracticeSession has valid data.
// Returns an error if any field fails validation.
func (s *PracticeSession) Validate() error {
	if s.WordID <= 0 {
		return fmt.Errorf("%w: word ID must be positive", ErrInvalidID)
	}
	if strings.TrimSpace(s.Sentence) == "" {
		return ErrEmptySentence
	}
	if s.Score < MinScore || s.Score > MaxScore {
		return fmt.Errorf("%w: %g", ErrInvalidScore, s.Score)
	}
	if !s.Level.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCEFRLevel, s.Level)
	}
	if s.Feedback == "" {
		return ErrEmptyFeedback
	}
	return nil
}
