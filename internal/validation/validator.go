// Package validation defines the interface for AI sentence grading.
// It decouples the practice flow from the concrete grading backend in
// internal/platform/grader, allowing tests to substitute their own
// implementations.
package validation

import (
	"context"

	"github.com/worddee/worddee-api/internal/domain"
)

// SentenceValidator grades a submitted sentence for a vocabulary word.
type SentenceValidator interface {
	// ValidateSentence sends the word, its definition, and the learner's
	// sentence to the grading backend and returns the assessment.
	//
	// Implementations absorb transport and protocol failures into a
	// deterministic fallback result rather than returning them; a non-nil
	// error indicates a programming invariant violation, not a degraded
	// backend.
	ValidateSentence(ctx context.Context, word, definition, sentence string) (*domain.ValidationResult, error)
}
