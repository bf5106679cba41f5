package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CaseAssign_Go/internal/repository"
)

// ResultsHandler serves persisted session results after the experiment
type ResultsHandler struct {
	repo repository.Results
}

// NewResultsHandler creates a new ResultsHandler
func NewResultsHandler(repo repository.Results) *ResultsHandler {
	return &ResultsHandler{repo: repo}
}

// SessionListResponse lists stored session codes
type SessionListResponse struct {
	Sessions []string `json:"sessions"`
}

// HandleList returns the codes of every stored session
// @Summary Stored sessions
// @Tags results
// @Produce json
// @Success 200 {object} SessionListResponse
// @Router /results [get]
func (h *ResultsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	codes, err := h.repo.ListSessions(r.Context())
	if err != nil {
		respondServiceError(w, r, LogMsgStoredResultsFailed, err)
		return
	}
	if codes == nil {
		codes = []string{}
	}
	respondJSON(w, http.StatusOK, SessionListResponse{Sessions: codes})
}

// HandleGet returns the stored assignments and payoffs of one session
// @Summary Stored session results
// @Tags results
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} domain.SessionRecord
// @Failure 404 {object} ErrorResponse
// @Router /results/{code} [get]
func (h *ResultsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.repo.GetSession(r.Context(), chi.URLParam(r, URLParamSession))
	if err != nil {
		respondServiceError(w, r, LogMsgStoredResultsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}
