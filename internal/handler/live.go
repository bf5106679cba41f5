package handler

import (
	"encoding/json"
	"net/http"

	"github.com/osse101/CaseAssign_Go/internal/live"
)

// LiveHandler serves the greedy live channel over plain HTTP
type LiveHandler struct {
	dispatcher *live.Dispatcher
}

// NewLiveHandler creates a new LiveHandler
func NewLiveHandler(dispatcher *live.Dispatcher) *LiveHandler {
	return &LiveHandler{dispatcher: dispatcher}
}

// HandleMessage dispatches one live action. Rejected claims are typed
// outcomes in a 200 response, not HTTP errors.
// @Summary Live action
// @Description Actions load, select_case and unselect_case; outcomes case_assigned, case_not_found, case_unavailable, exceed_budget, case_unselected, load, invalid_action
// @Tags greedy
// @Accept json
// @Produce json
// @Param code path string true "Session code"
// @Param X-Participant-Token header string true "Participant token"
// @Param request body live.Message true "Action"
// @Success 200 {object} live.Response
// @Failure 400 {object} live.Response
// @Router /sessions/{code}/live [post]
func (h *LiveHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	p, _ := ParticipantFromContext(r.Context())

	var msg live.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respondJSON(w, http.StatusBadRequest, live.Invalid())
		return
	}

	resp, err := h.dispatcher.Handle(r.Context(), SessionFromContext(r.Context()), p.ID, msg)
	if err != nil {
		respondServiceError(w, r, LogMsgLiveFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
