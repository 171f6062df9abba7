package vocab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/worddee/worddee-api/internal/config"
	"github.com/worddee/worddee-api/internal/domain"
	"github.com/worddee/worddee-api/internal/platform/logger"
)

// Client errors. The vocabulary service has no meaningful degraded-mode
// answer, so failures propagate as typed errors instead of a fallback.
var (
	// ErrWordNotFound is returned when the service reports no matching word.
	ErrWordNotFound = errors.New("word not found")

	// ErrServiceUnavailable is returned when the vocabulary service cannot
	// be reached or answers with an unexpected status or body.
	ErrServiceUnavailable = errors.New("vocabulary service unavailable")

	// ErrInvalidConfig is returned when the client configuration is incomplete.
	ErrInvalidConfig = errors.New("invalid vocab client configuration")
)

// apiKeyHeader carries the vocabulary service credential when configured.
const apiKeyHeader = "X-API-Key"

// Client fetches word records from the external vocabulary service.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a vocabulary client from the given configuration.
// If logger is nil, a default logger will be used.
func NewClient(cfg config.VocabConfig, log *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", ErrInvalidConfig)
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}

	if log == nil {
		log = slog.Default()
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: log.With(slog.String("component", "vocab_client")),
	}, nil
}

// RandomWord fetches a random word, optionally filtered by difficulty tier.
// Returns ErrWordNotFound if the service reports no matching word and
// ErrServiceUnavailable for any transport or protocol failure.
func (c *Client) RandomWord(ctx context.Context, difficulty *domain.DifficultyTier) (*domain.Word, error) {
	endpoint := c.baseURL + "/api/random"
	if difficulty != nil {
		endpoint += "?difficulty=" + url.QueryEscape(string(*difficulty))
	}
	return c.fetchWord(ctx, endpoint)
}

// WordByID fetches a specific word by its identifier.
// Returns ErrWordNotFound if the service reports no such id and
// ErrServiceUnavailable for any transport or protocol failure.
func (c *Client) WordByID(ctx context.Context, id int64) (*domain.Word, error) {
	endpoint := fmt.Sprintf("%s/api/words/%d", c.baseURL, id)
	return c.fetchWord(ctx, endpoint)
}

// fetchWord performs one GET round trip and maps the response onto a Word.
func (c *Client) fetchWord(ctx context.Context, endpoint string) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", ErrServiceUnavailable, err)
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("vocabulary request failed",
			slog.String("url", endpoint),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("failed to close response body", slog.String("error", closeErr.Error()))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		log.Debug("vocabulary service reported no matching word",
			slog.String("url", endpoint))
		return nil, ErrWordNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		log.Warn("vocabulary service returned unexpected status",
			slog.String("url", endpoint),
			slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var word domain.Word
	if err := json.NewDecoder(resp.Body).Decode(&word); err != nil {
		log.Warn("failed to decode vocabulary response",
			slog.String("url", endpoint),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: malformed response body: %v", ErrServiceUnavailable, err)
	}

	log.Debug("fetched word",
		slog.Int64("word_id", word.ID),
		slog.String("difficulty", string(word.DifficultyLevel)))
	return &word, nil
}
