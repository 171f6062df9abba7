package service

import (
	"context"
	"sync"

	"github.com/worddee/worddee-api/internal/domain"
	"github.com/worddee/worddee-api/internal/store"
)

// mockWordFetcher is a configurable mock of the WordFetcher interface.
// The mutex keeps the call counters safe under concurrent submissions.
type mockWordFetcher struct {
	mu sync.Mutex

	randomWordFn func(ctx context.Context, difficulty *domain.DifficultyTier) (*domain.Word, error)
	wordByIDFn   func(ctx context.Context, id int64) (*domain.Word, error)

	randomWordCalls int
	wordByIDCalls   int
}

func (m *mockWordFetcher) RandomWord(ctx context.Context, difficulty *domain.DifficultyTier) (*domain.Word, error) {
	m.mu.Lock()
	m.randomWordCalls++
	m.mu.Unlock()
	if m.randomWordFn != nil {
		return m.randomWordFn(ctx, difficulty)
	}
	return testWord(), nil
}

func (m *mockWordFetcher) WordByID(ctx context.Context, id int64) (*domain.Word, error) {
	m.mu.Lock()
	m.wordByIDCalls++
	m.mu.Unlock()
	if m.wordByIDFn != nil {
		return m.wordByIDFn(ctx, id)
	}
	return testWord(), nil
}

func (m *mockWordFetcher) randomWordCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.randomWordCalls
}

func (m *mockWordFetcher) wordByIDCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wordByIDCalls
}

// mockValidator is a configurable mock of validation.SentenceValidator.
type mockValidator struct {
	mu sync.Mutex

	validateFn func(ctx context.Context, word, definition, sentence string) (*domain.ValidationResult, error)

	calls int
}

func (m *mockValidator) ValidateSentence(ctx context.Context, word, definition, sentence string) (*domain.ValidationResult, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.validateFn != nil {
		return m.validateFn(ctx, word, definition, sentence)
	}
	return &domain.ValidationResult{Score: 8.0, Level: domain.LevelB2, Feedback: "Good work."}, nil
}

func (m *mockValidator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockSessionStore is a configurable mock of store.SessionStore. When no
// createFn is supplied it behaves as an in-memory store handing out
// monotonically increasing IDs, which also makes it usable from concurrent
// submissions.
type mockSessionStore struct {
	mu sync.Mutex

	createFn     func(ctx context.Context, session *domain.PracticeSession) error
	listRecentFn func(ctx context.Context, limit int) ([]*domain.PracticeSession, error)
	aggregateFn  func(ctx context.Context) (*store.SessionAggregate, error)

	created []*domain.PracticeSession
	nextID  int64
}

func (m *mockSessionStore) Create(ctx context.Context, session *domain.PracticeSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	m.nextID++
	session.ID = m.nextID
	m.created = append(m.created, session)
	return nil
}

func (m *mockSessionStore) ListRecent(ctx context.Context, limit int) ([]*domain.PracticeSession, error) {
	if m.listRecentFn != nil {
		return m.listRecentFn(ctx, limit)
	}
	return []*domain.PracticeSession{}, nil
}

func (m *mockSessionStore) Aggregate(ctx context.Context) (*store.SessionAggregate, error) {
	if m.aggregateFn != nil {
		return m.aggregateFn(ctx)
	}
	return &store.SessionAggregate{LevelCounts: map[string]int64{}}, nil
}

func (m *mockSessionStore) createdCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

func testWord() *domain.Word {
	return &domain.Word{
		ID:              42,
		Word:            "ephemeral",
		Definition:      "lasting a very short time",
		DifficultyLevel: domain.DifficultyAdvanced,
	}
}
