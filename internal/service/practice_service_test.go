package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worddee/worddee-api/internal/domain"
	"github.com/worddee/worddee-api/internal/platform/vocab"
)

func newTestPracticeService(t *testing.T, words *mockWordFetcher, grader *mockValidator, sessions *mockSessionStore) PracticeService {
	t.Helper()
	svc, err := NewPracticeService(words, grader, sessions, nil)
	require.NoError(t, err)
	return svc
}

func TestNewPracticeService_NilDependencies(t *testing.T) {
	words := &mockWordFetcher{}
	grader := &mockValidator{}
	sessions := &mockSessionStore{}

	_, err := NewPracticeService(nil, grader, sessions, nil)
	assert.Error(t, err)

	_, err = NewPracticeService(words, nil, sessions, nil)
	assert.Error(t, err)

	_, err = NewPracticeService(words, grader, nil, nil)
	assert.Error(t, err)

	_, err = NewPracticeService(words, grader, sessions, nil)
	assert.NoError(t, err)
}

func TestGetPracticeWord(t *testing.T) {
	t.Run("returns_word", func(t *testing.T) {
		words := &mockWordFetcher{}
		svc := newTestPracticeService(t, words, &mockValidator{}, &mockSessionStore{})

		word, err := svc.GetPracticeWord(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "ephemeral", word.Word)
		assert.Equal(t, 1, words.randomWordCallCount())
	})

	t.Run("forwards_difficulty", func(t *testing.T) {
		var gotDifficulty *domain.DifficultyTier
		words := &mockWordFetcher{
			randomWordFn: func(ctx context.Context, difficulty *domain.DifficultyTier) (*domain.Word, error) {
				gotDifficulty = difficulty
				return testWord(), nil
			},
		}
		svc := newTestPracticeService(t, words, &mockValidator{}, &mockSessionStore{})

		tier := domain.DifficultyBeginner
		_, err := svc.GetPracticeWord(context.Background(), &tier)
		require.NoError(t, err)
		require.NotNil(t, gotDifficulty)
		assert.Equal(t, domain.DifficultyBeginner, *gotDifficulty)
	})

	t.Run("maps_service_unavailable", func(t *testing.T) {
		words := &mockWordFetcher{
			randomWordFn: func(ctx context.Context, difficulty *domain.DifficultyTier) (*domain.Word, error) {
				return nil, fmt.Errorf("%w: connection refused", vocab.ErrServiceUnavailable)
			},
		}
		svc := newTestPracticeService(t, words, &mockValidator{}, &mockSessionStore{})

		_, err := svc.GetPracticeWord(context.Background(), nil)
		assert.ErrorIs(t, err, ErrVocabUnavailable)
	})

	t.Run("maps_not_found", func(t *testing.T) {
		words := &mockWordFetcher{
			randomWordFn: func(ctx context.Context, difficulty *domain.DifficultyTier) (*domain.Word, error) {
				return nil, vocab.ErrWordNotFound
			},
		}
		svc := newTestPracticeService(t, words, &mockValidator{}, &mockSessionStore{})

		_, err := svc.GetPracticeWord(context.Background(), nil)
		assert.ErrorIs(t, err, ErrWordNotFound)
	})
}

func TestSubmitPractice(t *testing.T) {
	t.Run("happy_path", func(t *testing.T) {
		corrected := "Fame is ephemeral."
		words := &mockWordFetcher{}
		grader := &mockValidator{
			validateFn: func(ctx context.Context, word, definition, sentence string) (*domain.ValidationResult, error) {
				assert.Equal(t, "ephemeral", word)
				assert.Equal(t, "lasting a very short time", definition)
				return &domain.ValidationResult{
					Score:             9.0,
					Level:             domain.LevelC1,
					Feedback:          "Excellent.",
					CorrectedSentence: &corrected,
				}, nil
			},
		}
		sessions := &mockSessionStore{}
		svc := newTestPracticeService(t, words, grader, sessions)

		session, err := svc.SubmitPractice(context.Background(), 42, "Fame are ephemeral.")
		require.NoError(t, err)

		assert.Equal(t, int64(1), session.ID, "store-assigned ID is returned")
		assert.Equal(t, int64(42), session.WordID)
		assert.Equal(t, "Fame are ephemeral.", session.Sentence)
		assert.Equal(t, 9.0, session.Score)
		assert.Equal(t, domain.LevelC1, session.Level)
		require.NotNil(t, session.CorrectedSentence)
		assert.Equal(t, corrected, *session.CorrectedSentence)
		assert.Equal(t, 1, sessions.createdCount())
	})

	t.Run("blank_sentence_rejected_before_any_call", func(t *testing.T) {
		words := &mockWordFetcher{}
		grader := &mockValidator{}
		sessions := &mockSessionStore{}
		svc := newTestPracticeService(t, words, grader, sessions)

		_, err := svc.SubmitPractice(context.Background(), 42, "   \t\n")
		assert.ErrorIs(t, err, ErrEmptySentence)

		assert.Zero(t, words.wordByIDCallCount(), "blank submission must not hit the vocabulary service")
		assert.Zero(t, grader.callCount(), "blank submission must not be graded")
		assert.Zero(t, sessions.createdCount(), "blank submission must not be persisted")
	})

	t.Run("unknown_word_stops_pipeline", func(t *testing.T) {
		words := &mockWordFetcher{
			wordByIDFn: func(ctx context.Context, id int64) (*domain.Word, error) {
				return nil, vocab.ErrWordNotFound
			},
		}
		grader := &mockValidator{}
		sessions := &mockSessionStore{}
		svc := newTestPracticeService(t, words, grader, sessions)

		_, err := svc.SubmitPractice(context.Background(), 999, "A fine sentence.")
		assert.ErrorIs(t, err, ErrWordNotFound)

		assert.Zero(t, grader.callCount(), "unknown word must not be graded")
		assert.Zero(t, sessions.createdCount(), "unknown word must not be persisted")
	})

	t.Run("vocab_outage_surfaces_unavailable", func(t *testing.T) {
		words := &mockWordFetcher{
			wordByIDFn: func(ctx context.Context, id int64) (*domain.Word, error) {
				return nil, fmt.Errorf("%w: timeout", vocab.ErrServiceUnavailable)
			},
		}
		sessions := &mockSessionStore{}
		svc := newTestPracticeService(t, words, &mockValidator{}, sessions)

		_, err := svc.SubmitPractice(context.Background(), 42, "A fine sentence.")
		assert.ErrorIs(t, err, ErrVocabUnavailable)
		assert.Zero(t, sessions.createdCount())
	})

	t.Run("grader_error_wrapped", func(t *testing.T) {
		graderErr := errors.New("contract violation")
		grader := &mockValidator{
			validateFn: func(ctx context.Context, word, definition, sentence string) (*domain.ValidationResult, error) {
				return nil, graderErr
			},
		}
		sessions := &mockSessionStore{}
		svc := newTestPracticeService(t, &mockWordFetcher{}, grader, sessions)

		_, err := svc.SubmitPractice(context.Background(), 42, "A fine sentence.")
		require.Error(t, err)
		assert.ErrorIs(t, err, graderErr)
		assert.True(t, IsPracticeServiceError(err))
		assert.Zero(t, sessions.createdCount())
	})

	t.Run("store_error_wrapped", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		sessions := &mockSessionStore{
			createFn: func(ctx context.Context, session *domain.PracticeSession) error {
				return storeErr
			},
		}
		svc := newTestPracticeService(t, &mockWordFetcher{}, &mockValidator{}, sessions)

		_, err := svc.SubmitPractice(context.Background(), 42, "A fine sentence.")
		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("concurrent_submissions_get_unique_ids", func(t *testing.T) {
		const submissions = 25

		words := &mockWordFetcher{}
		grader := &mockValidator{}
		sessions := &mockSessionStore{}
		svc := newTestPracticeService(t, words, grader, sessions)

		results := make([]*domain.PracticeSession, submissions)
		errs := make([]error, submissions)

		var wg sync.WaitGroup
		for i := 0; i < submissions; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = svc.SubmitPractice(context.Background(), 42, fmt.Sprintf("Sentence number %d.", i))
			}(i)
		}
		wg.Wait()

		seen := make(map[int64]bool, submissions)
		for i := 0; i < submissions; i++ {
			require.NoError(t, errs[i])
			require.NotNil(t, results[i])
			assert.False(t, seen[results[i].ID], "session ID %d assigned twice", results[i].ID)
			seen[results[i].ID] = true
		}
		assert.Equal(t, submissions, sessions.createdCount())
		assert.Equal(t, submissions, words.wordByIDCallCount())
		assert.Equal(t, submissions, grader.callCount())
	})
}
