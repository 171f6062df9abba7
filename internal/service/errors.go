package service

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the service layer.
var (
	// ErrWordNotFound indicates that the requested word does not exist in
	// the vocabulary service.
	ErrWordNotFound = errors.New("word not found")

	// ErrVocabUnavailable indicates that the vocabulary backend could not
	// be reached.
	ErrVocabUnavailable = errors.New("vocabulary backend unreachable")

	// ErrEmptySentence indicates a submission whose sentence is empty or
	// whitespace-only. It is raised before any network or storage call.
	ErrEmptySentence = errors.New("sentence cannot be empty")
)

// PracticeServiceError wraps errors from the service layer with context.
type PracticeServiceError struct {
	// Operation is the operation that failed (e.g., "submit_practice")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PracticeServiceError.
func (e *PracticeServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("practice service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("practice service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PracticeServiceError) Unwrap() error {
	return e.Err
}

// NewPracticeServiceError creates a new PracticeServiceError.
// It returns known sentinel errors directly without wrapping.
func NewPracticeServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrWordNotFound) ||
		errors.Is(err, ErrVocabUnavailable) ||
		errors.Is(err, ErrEmptySentence) {
		return err
	}

	return &PracticeServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// IsPracticeServiceError checks if an error is a PracticeServiceError.
func IsPracticeServiceError(err error) bool {
	var serviceErr *PracticeServiceError
	return errors.As(err, &serviceErr)
}
