package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/moverank/leadgen/internal/infra/http/middleware"
	"github.com/moverank/leadgen/internal/infra/integration/openai"
	"github.com/moverank/leadgen/internal/usecase"
)

type LeadHandler struct {
	ScoreUC     *usecase.ScoreLeadUseCase
	rateLimiter *RateLimiter
	logger      zerolog.Logger
}

func NewLeadHandler(scoreUC *usecase.ScoreLeadUseCase, logger zerolog.Logger) *LeadHandler {
	return &LeadHandler{
		ScoreUC:     scoreUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
		logger:      logger,
	}
}

// HandleScore is the public lead intake: validate, score, best-effort store,
// always return the scored lead.
func (h *LeadHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.ScoreLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.ScoreUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("lead scoring failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RecordLeadScored(lead.Reasoning == openai.FallbackReasoning)
	writeJSON(w, http.StatusOK, lead)
}
