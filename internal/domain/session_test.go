package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() *ValidationResult {
	return &ValidationResult{Score: 8.0, Level: LevelB2, Feedback: "Well formed."}
}

func TestNewPracticeSession(t *testing.T) {
	t.Run("builds_session_from_result", func(t *testing.T) {
		corrected := "She runs quickly."
		result := validResult()
		result.CorrectedSentence = &corrected

		session, err := NewPracticeSession(42, "She run quickly.", result)
		require.NoError(t, err)

		assert.Equal(t, int64(42), session.WordID)
		assert.Equal(t, "She run quickly.", session.Sentence)
		assert.Equal(t, 8.0, session.Score)
		assert.Equal(t, LevelB2, session.Level)
		assert.Equal(t, "Well formed.", session.Feedback)
		require.NotNil(t, session.CorrectedSentence)
		assert.Equal(t, corrected, *session.CorrectedSentence)
		assert.Zero(t, session.ID, "store assigns the ID")
		assert.True(t, session.CreatedAt.IsZero(), "store assigns the timestamp")
	})

	t.Run("nil_result_rejected", func(t *testing.T) {
		_, err := NewPracticeSession(1, "A sentence.", nil)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestPracticeSession_Validate(t *testing.T) {
	base := func() *PracticeSession {
		return &PracticeSession{
			WordID:   7,
			Sentence: "The cat sat on the mat.",
			Score:    6.5,
			Level:    LevelB1,
			Feedback: "Solid use of the word.",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*PracticeSession)
		wantErr error
	}{
		{name: "valid", mutate: func(*PracticeSession) {}},
		{name: "zero_word_id", mutate: func(s *PracticeSession) { s.WordID = 0 }, wantErr: ErrInvalidID},
		{name: "negative_word_id", mutate: func(s *PracticeSession) { s.WordID = -3 }, wantErr: ErrInvalidID},
		{name: "blank_sentence", mutate: func(s *PracticeSession) { s.Sentence = "   \t" }, wantErr: ErrEmptySentence},
		{name: "score_out_of_range", mutate: func(s *PracticeSession) { s.Score = 11 }, wantErr: ErrInvalidScore},
		{name: "invalid_level", mutate: func(s *PracticeSession) { s.Level = "X1" }, wantErr: ErrInvalidCEFRLevel},
		{name: "empty_feedback", mutate: func(s *PracticeSession) { s.Feedback = "" }, wantErr: ErrEmptyFeedback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := base()
			tt.mutate(session)
			err := session.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
