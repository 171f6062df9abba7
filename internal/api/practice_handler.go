package api

import (
	"log/slog"
	"net/http"

	"github.com/worddee/worddee-api/internal/api/shared"
	"github.com/worddee/worddee-api/internal/domain"
	"github.com/worddee/worddee-api/internal/service"
)

// SubmitPracticeRequest represents the request body for submitting a
// practice sentence.
type SubmitPracticeRequest struct {
	WordID   int64  `json:"word_id" validate:"required,gt=0"`
	Sentence string `json:"sentence" validate:"required"`
}

// PracticeHandler handles practice-related HTTP requests.
type PracticeHandler struct {
	practiceService service.PracticeService
	logger          *slog.Logger
}

// NewPracticeHandler creates a new PracticeHandler.
func NewPracticeHandler(practiceService service.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		practiceService: practiceService,
		logger:          logger.With("component", "practice_handler"),
	}
}

// GetWord handles GET /api/practice/word requests.
// The optional difficulty query parameter filters the random selection.
func (h *PracticeHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	var difficulty *domain.DifficultyTier
	if raw := r.URL.Query().Get("difficulty"); raw != "" {
		tier, err := domain.ParseDifficultyTier(raw)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		difficulty = &tier
	}

	word, err := h.practiceService.GetPracticeWord(r.Context(), difficulty)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, word)
}

// SubmitPractice handles POST /api/practice/submit requests.
// It resolves the word, grades the sentence, persists the attempt, and
// returns the stored session.
func (h *PracticeHandler) SubmitPractice(w http.ResponseWriter, r *http.Request) {
	var req SubmitPracticeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Validation error: word_id and sentence are required")
		return
	}

	session, err := h.practiceService.SubmitPractice(r.Context(), req.WordID, req.Sentence)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(session))
}
