// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptySentence is returned when a submitted sentence is empty or
	// contains only whitespace.
	ErrEmptySentence = errors.New("sentence cannot be empty")

	// ErrInvalidScore is returned when a score falls outside the [0, 10] range.
	ErrInvalidScore = errors.New("score must be between 0 and 10")

	// ErrInvalidCEFRLevel is returned when a proficiency level code is not
	// one of the six CEFR values.
	ErrInvalidCEFRLevel = errors.New("invalid CEFR level")

	// ErrInvalidDifficulty is returned when a difficulty tier is not one of
	// the enumerated values.
	ErrInvalidDifficulty = errors.New("invalid difficulty tier")

	// ErrEmptyFeedback is returned when a validation result carries no
	// feedback text.
	ErrEmptyFeedback = errors.New("feedback cannot be empty")
)
