package handler

import (
	"net/http"

	"github.com/osse101/CaseAssign_Go/internal/auth"
	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/greedy"
)

// GreedyHandler exposes the greedy engine's round and pool operations
type GreedyHandler struct {
	service greedy.Service
}

// NewGreedyHandler creates a new GreedyHandler
func NewGreedyHandler(service greedy.Service) *GreedyHandler {
	return &GreedyHandler{service: service}
}

// RoundResponse reports the round a session is in
type RoundResponse struct {
	Round int `json:"round"`
}

// SummaryResponse lists judges with the cases they hold
type SummaryResponse struct {
	Judges []domain.JudgeSummary `json:"judges"`
}

// HandleAvailable returns the open pool and the caller's claims
// @Summary Available cases
// @Tags greedy
// @Produce json
// @Param code path string true "Session code"
// @Param X-Participant-Token header string true "Participant token"
// @Success 200 {object} greedy.Pool
// @Router /sessions/{code}/cases/available [get]
func (h *GreedyHandler) HandleAvailable(w http.ResponseWriter, r *http.Request) {
	p, _ := ParticipantFromContext(r.Context())

	pool, err := h.service.ListAvailable(r.Context(), SessionFromContext(r.Context()), p.ID)
	if err != nil {
		respondServiceError(w, r, LogMsgListCasesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, pool)
}

// HandleNextRound advances the round, aging and replenishing the pool
// @Summary Next round
// @Tags greedy
// @Produce json
// @Param code path string true "Session code"
// @Param X-Participant-Token header string true "Admin participant token"
// @Success 200 {object} RoundResponse
// @Failure 403 {object} ErrorResponse
// @Router /sessions/{code}/rounds/next [post]
func (h *GreedyHandler) HandleNextRound(w http.ResponseWriter, r *http.Request) {
	p, _ := ParticipantFromContext(r.Context())
	if err := auth.RequireRole(p.Role, domain.RoleAdmin); err != nil {
		respondServiceError(w, r, LogMsgNextRoundFailed, err)
		return
	}

	round, err := h.service.NextRound(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, r, LogMsgNextRoundFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, RoundResponse{Round: round})
}

// HandleSummary lists every judge holding cases and their point totals
// @Summary Session summary
// @Tags sessions
// @Produce json
// @Param code path string true "Session code"
// @Param X-Participant-Token header string true "Participant token"
// @Success 200 {object} SummaryResponse
// @Router /sessions/{code}/summary [get]
func (h *GreedyHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	judges, err := h.service.Summary(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, r, LogMsgSummaryFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SummaryResponse{Judges: judges})
}
