package api

import (
	"errors"
	"net/http"

	"github.com/worddee/worddee-api/internal/api/shared"
	"github.com/worddee/worddee-api/internal/domain"
	"github.com/worddee/worddee-api/internal/service"
	"github.com/worddee/worddee-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrWordNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Invalid input errors
	case errors.Is(err, service.ErrEmptySentence),
		errors.Is(err, domain.ErrEmptySentence),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusUnprocessableEntity

	// Upstream dependency errors without a fallback
	case errors.Is(err, service.ErrVocabUnavailable):
		return http.StatusServiceUnavailable

	// Default: internal server error (storage failures included)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, service.ErrEmptySentence),
		errors.Is(err, domain.ErrEmptySentence):
		return "Sentence must not be empty"

	case errors.Is(err, domain.ErrInvalidDifficulty):
		return "Invalid difficulty tier"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return "Invalid request data"

	case errors.Is(err, service.ErrVocabUnavailable):
		return "Vocabulary backend unreachable"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for an internal error, mapping it to a
// status code and safe message. An explicit userMessage overrides the
// derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	// shared handles logging with trace correlation
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
