package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/worddee/worddee-api/internal/domain"
	"github.com/worddee/worddee-api/internal/platform/logger"
	"github.com/worddee/worddee-api/internal/store"
)

// psql builds queries with PostgreSQL-style $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// sessionColumns is the column list shared by every session query.
var sessionColumns = []string{
	"id", "word_id", "sentence", "score", "cefr_level", "feedback", "corrected_sentence", "created_at",
}

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the SessionStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

// Create implements store.SessionStore.Create
// It saves a new practice session to the database, handling domain validation.
// The database assigns the identifier and creation timestamp; both are
// written back onto the session before the call returns.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.PracticeSession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("word_id", session.WordID))
		return err
	}

	query, args, err := psql.Insert("practice_sessions").
		Columns("word_id", "sentence", "score", "cefr_level", "feedback", "corrected_sentence").
		Values(
			session.WordID,
			session.Sentence,
			session.Score,
			string(session.Level),
			session.Feedback,
			session.CorrectedSentence,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return store.NewStoreError("practice_session", "create", "failed to build query", err)
	}

	err = s.db.QueryRowContext(ctx, query, args...).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		log.Error("failed to create practice session",
			slog.String("error", err.Error()),
			slog.Int64("word_id", session.WordID))
		return store.NewStoreError("practice_session", "create", "insert failed", MapError(err))
	}

	log.Info("practice session created",
		slog.Int64("session_id", session.ID),
		slog.Int64("word_id", session.WordID),
		slog.Float64("score", session.Score),
		slog.String("cefr_level", string(session.Level)))
	return nil
}

// ListRecent implements store.SessionStore.ListRecent
// It retrieves up to limit sessions ordered newest first, with sessions
// sharing a creation timestamp ordered by descending identifier.
func (s *PostgresSessionStore) ListRecent(ctx context.Context, limit int) ([]*domain.PracticeSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.PracticeSession{}, nil
	}

	query, args, err := psql.Select(sessionColumns...).
		From("practice_sessions").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, store.NewStoreError("practice_session", "list_recent", "failed to build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list recent sessions",
			slog.String("error", err.Error()),
			slog.Int("limit", limit))
		return nil, store.NewStoreError("practice_session", "list_recent", "query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	sessions := make([]*domain.PracticeSession, 0, limit)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, store.NewStoreError("practice_session", "list_recent", "scan failed", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("practice_session", "list_recent", "row iteration failed", MapError(err))
	}

	log.Debug("listed recent sessions",
		slog.Int("limit", limit),
		slog.Int("returned", len(sessions)))
	return sessions, nil
}

// Aggregate implements store.SessionStore.Aggregate
// It computes the total session count, the mean score, and the per-level
// occurrence counts over the entire session log. The mean is 0.0 when no
// sessions exist.
func (s *PostgresSessionStore) Aggregate(ctx context.Context) (*store.SessionAggregate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	totalsQuery, totalsArgs, err := psql.Select("COUNT(*)", "COALESCE(AVG(score), 0)").
		From("practice_sessions").
		ToSql()
	if err != nil {
		return nil, store.NewStoreError("practice_session", "aggregate", "failed to build totals query", err)
	}

	agg := &store.SessionAggregate{
		LevelCounts: make(map[string]int64),
	}

	err = s.db.QueryRowContext(ctx, totalsQuery, totalsArgs...).Scan(&agg.Count, &agg.MeanScore)
	if err != nil {
		log.Error("failed to aggregate session totals", slog.String("error", err.Error()))
		return nil, store.NewStoreError("practice_session", "aggregate", "totals query failed", MapError(err))
	}

	levelsQuery, levelsArgs, err := psql.Select("cefr_level", "COUNT(*)").
		From("practice_sessions").
		GroupBy("cefr_level").
		ToSql()
	if err != nil {
		return nil, store.NewStoreError("practice_session", "aggregate", "failed to build level query", err)
	}

	rows, err := s.db.QueryContext(ctx, levelsQuery, levelsArgs...)
	if err != nil {
		log.Error("failed to aggregate session levels", slog.String("error", err.Error()))
		return nil, store.NewStoreError("practice_session", "aggregate", "level query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	for rows.Next() {
		var level string
		var count int64
		if err := rows.Scan(&level, &count); err != nil {
			return nil, store.NewStoreError("practice_session", "aggregate", "scan failed", err)
		}
		agg.LevelCounts[level] = count
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("practice_session", "aggregate", "row iteration failed", MapError(err))
	}

	log.Debug("aggregated sessions",
		slog.Int64("count", agg.Count),
		slog.Float64("mean_score", agg.MeanScore))
	return agg, nil
}

// scanSession reads one session row into a domain object.
func scanSession(rows *sql.Rows) (*domain.PracticeSession, error) {
	var session domain.PracticeSession
	var level string
	var corrected sql.NullString
	var createdAt time.Time

	err := rows.Scan(
		&session.ID,
		&session.WordID,
		&session.Sentence,
		&session.Score,
		&level,
		&session.Feedback,
		&corrected,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	session.Level = domain.CEFRLevel(level)
	session.CreatedAt = createdAt
	if corrected.Valid {
		session.CorrectedSentence = &corrected.String
	}
	return &session, nil
}
