package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/worddee/worddee-api/internal/config"
	"github.com/worddee/worddee-api/internal/domain"
	"github.com/worddee/worddee-api/internal/platform/logger"
	"github.com/worddee/worddee-api/internal/validation"
)

// ErrInvalidConfig is returned when the grader configuration is incomplete.
var ErrInvalidConfig = errors.New("invalid grader configuration")

// FallbackMarker appears in the feedback text of every fallback result.
// It is the only signal distinguishing a fallback from a genuine AI
// response, so callers and tests match on this constant rather than on
// ad-hoc substrings.
const FallbackMarker = "fallback result"

// Fixed values of the fallback assessment: a passing score at a mid-tier
// level, preserved from the upstream grading contract.
const (
	fallbackScore = 7.0
	fallbackLevel = domain.LevelB1
)

// Defaults substituted when a successful webhook response omits a field.
const (
	defaultScore    = 5.0
	defaultLevel    = domain.LevelA2
	defaultFeedback = "Sentence received."
)

// validateRequest is the JSON body sent to the grading webhook.
type validateRequest struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Sentence   string `json:"sentence"`
}

// validateResponse mirrors the webhook's JSON answer. Pointer fields let an
// omitted score be told apart from a genuine zero.
type validateResponse struct {
	Score             *float64 `json:"score"`
	CEFRLevel         string   `json:"cefr_level"`
	Feedback          string   `json:"feedback"`
	CorrectedSentence *string  `json:"corrected_sentence"`
}

// Webhook grades sentences by calling the external AI grading endpoint.
// It is safe for concurrent use.
type Webhook struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

// NewWebhook creates a grading client from the given configuration.
// If logger is nil, a default logger will be used.
func NewWebhook(cfg config.GraderConfig, log *slog.Logger) (*Webhook, error) {
	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("%w: webhook URL cannot be empty", ErrInvalidConfig)
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}

	if log == nil {
		log = slog.Default()
	}

	return &Webhook{
		url: cfg.WebhookURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: log.With(slog.String("component", "grader")),
	}, nil
}

// Ensure Webhook implements the validation.SentenceValidator interface
var _ validation.SentenceValidator = (*Webhook)(nil)

// ValidateSentence implements validation.SentenceValidator.
// On a parseable 2xx response it maps the webhook's fields into a
// ValidationResult, substituting defaults for omitted fields. On any
// failure it returns the fallback result and a nil error; availability is
// deliberately traded over accuracy here.
func (w *Webhook) ValidateSentence(ctx context.Context, word, definition, sentence string) (*domain.ValidationResult, error) {
	log := logger.FromContextOrDefault(ctx, w.logger)

	body, err := json.Marshal(validateRequest{
		Word:       word,
		Definition: definition,
		Sentence:   sentence,
	})
	if err != nil {
		log.Warn("failed to encode grading request, using fallback",
			slog.String("word", word),
			slog.String("error", err.Error()))
		return w.fallback(word), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		log.Warn("failed to build grading request, using fallback",
			slog.String("word", word),
			slog.String("error", err.Error()))
		return w.fallback(word), nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.http.Do(req)
	if err != nil {
		log.Warn("grading request failed, using fallback",
			slog.String("word", word),
			slog.String("error", err.Error()))
		return w.fallback(word), nil
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("failed to close response body", slog.String("error", closeErr.Error()))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("grading service returned unexpected status, using fallback",
			slog.String("word", word),
			slog.Int("status", resp.StatusCode))
		return w.fallback(word), nil
	}

	var payload validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warn("failed to decode grading response, using fallback",
			slog.String("word", word),
			slog.String("error", err.Error()))
		return w.fallback(word), nil
	}

	result := mapResponse(payload)
	if err := result.Validate(); err != nil {
		log.Warn("grading response failed validation, using fallback",
			slog.String("word", word),
			slog.String("error", err.Error()))
		return w.fallback(word), nil
	}

	log.Debug("sentence graded",
		slog.String("word", word),
		slog.Float64("score", result.Score),
		slog.String("cefr_level", string(result.Level)))
	return result, nil
}

// mapResponse converts a webhook payload into a ValidationResult,
// substituting defaults for omitted fields.
func mapResponse(payload validateResponse) *domain.ValidationResult {
	result := &domain.ValidationResult{
		Score:             defaultScore,
		Level:             defaultLevel,
		Feedback:          defaultFeedback,
		CorrectedSentence: payload.CorrectedSentence,
	}

	if payload.Score != nil {
		result.Score = *payload.Score
	}
	if payload.CEFRLevel != "" {
		result.Level = domain.CEFRLevel(payload.CEFRLevel)
	}
	if payload.Feedback != "" {
		result.Feedback = payload.Feedback
	}
	return result
}

// fallback builds the deterministic degraded-mode result for the word.
func (w *Webhook) fallback(word string) *domain.ValidationResult {
	return &domain.ValidationResult{
		Score: fallbackScore,
		Level: fallbackLevel,
		Feedback: fmt.Sprintf(
			"Good attempt! Your sentence using %q was recorded. (Note: this is a %s - the grading service could not be reached)",
			word, FallbackMarker,
		),
	}
}
