package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/worddee/worddee-api/internal/domain"
	"github.com/worddee/worddee-api/internal/platform/vocab"
	"github.com/worddee/worddee-api/internal/store"
	"github.com/worddee/worddee-api/internal/validation"
)

// WordFetcher defines the vocabulary client interface for the service layer.
type WordFetcher interface {
	// RandomWord fetches a random word, optionally filtered by difficulty.
	RandomWord(ctx context.Context, difficulty *domain.DifficultyTier) (*domain.Word, error)

	// WordByID fetches a specific word by its identifier.
	WordByID(ctx context.Context, id int64) (*domain.Word, error)
}

// PracticeService provides the practice flow: fetching a word to practice
// and submitting a sentence for grading and persistence.
type PracticeService interface {
	// GetPracticeWord returns a random word for the learner to practice,
	// optionally filtered by difficulty. Nothing is persisted.
	GetPracticeWord(ctx context.Context, difficulty *domain.DifficultyTier) (*domain.Word, error)

	// SubmitPractice grades the sentence for the given word and persists
	// the attempt as an immutable session. The word lookup strictly
	// precedes grading, which strictly precedes persistence.
	SubmitPractice(ctx context.Context, wordID int64, sentence string) (*domain.PracticeSession, error)
}

// practiceServiceImpl implements the PracticeService interface.
type practiceServiceImpl struct {
	words    WordFetcher
	grader   validation.SentenceValidator
	sessions store.SessionStore
	logger   *slog.Logger
}

// NewPracticeService creates a new PracticeService.
// It returns an error if any of the required dependencies are nil.
func NewPracticeService(
	words WordFetcher,
	grader validation.SentenceValidator,
	sessions store.SessionStore,
	logger *slog.Logger,
) (PracticeService, error) {
	if words == nil {
		return nil, &PracticeServiceError{
			Operation: "create_service",
			Message:   "words cannot be nil",
		}
	}
	if grader == nil {
		return nil, &PracticeServiceError{
			Operation: "create_service",
			Message:   "grader cannot be nil",
		}
	}
	if sessions == nil {
		return nil, &PracticeServiceError{
			Operation: "create_service",
			Message:   "sessions cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &practiceServiceImpl{
		words:    words,
		grader:   grader,
		sessions: sessions,
		logger:   logger.With("component", "practice_service"),
	}, nil
}

// GetPracticeWord delegates directly to the vocabulary client; errors are
// mapped to service sentinels and passed through.
func (s *practiceServiceImpl) GetPracticeWord(
	ctx context.Context,
	difficulty *domain.DifficultyTier,
) (*domain.Word, error) {
	word, err := s.words.RandomWord(ctx, difficulty)
	if err != nil {
		s.logger.Warn("failed to fetch practice word",
			"error", err,
			"difficulty", difficultyString(difficulty))
		return nil, mapVocabError("get_practice_word", err)
	}

	s.logger.Debug("fetched practice word",
		"word_id", word.ID,
		"difficulty", string(word.DifficultyLevel))
	return word, nil
}

// SubmitPractice runs the full submission pipeline:
// resolve the word, grade the sentence, persist the session.
func (s *practiceServiceImpl) SubmitPractice(
	ctx context.Context,
	wordID int64,
	sentence string,
) (*domain.PracticeSession, error) {
	// 1. Reject empty submissions before any network or storage call.
	if strings.TrimSpace(sentence) == "" {
		return nil, ErrEmptySentence
	}

	// 2. Resolve the word. An unknown word stops the flow here; the grader
	// is never called and nothing is written.
	word, err := s.words.WordByID(ctx, wordID)
	if err != nil {
		s.logger.Warn("failed to resolve word for submission",
			"error", err,
			"word_id", wordID)
		return nil, mapVocabError("submit_practice", err)
	}

	// 3. Grade the sentence. The grader's contract absorbs backend
	// failures into a fallback result, so an error here is an invariant
	// violation rather than a degraded backend.
	result, err := s.grader.ValidateSentence(ctx, word.Word, word.Definition, sentence)
	if err != nil {
		s.logger.Error("sentence validator violated its never-fail contract",
			"error", err,
			"word_id", wordID)
		return nil, NewPracticeServiceError("submit_practice", "sentence validation failed", err)
	}

	// 4. Persist the graded attempt. The store assigns ID and timestamp.
	session, err := domain.NewPracticeSession(wordID, sentence, result)
	if err != nil {
		return nil, NewPracticeServiceError("submit_practice", "failed to build session", err)
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("failed to persist practice session",
			"error", err,
			"word_id", wordID)
		return nil, NewPracticeServiceError("submit_practice", "failed to persist session", err)
	}

	s.logger.Info("practice submission recorded",
		"session_id", session.ID,
		"word_id", wordID,
		"score", session.Score,
		"cefr_level", string(session.Level))
	return session, nil
}

// mapVocabError converts vocabulary client errors into service sentinels.
func mapVocabError(operation string, err error) error {
	switch {
	case errors.Is(err, vocab.ErrWordNotFound):
		return ErrWordNotFound
	case errors.Is(err, vocab.ErrServiceUnavailable):
		return ErrVocabUnavailable
	default:
		return NewPracticeServiceError(operation, "vocabulary lookup failed", err)
	}
}

// difficultyString renders an optional difficulty tier for logging.
func difficultyString(difficulty *domain.DifficultyTier) string {
	if difficulty == nil {
		return "any"
	}
	return string(*difficulty)
}
