package handler

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/intake"
)

// CaseHandler handles administrator case uploads
type CaseHandler struct {
	intake intake.Service
}

// NewCaseHandler creates a new CaseHandler
func NewCaseHandler(intakeSvc intake.Service) *CaseHandler {
	return &CaseHandler{intake: intakeSvc}
}

// UploadCasesRequest wraps CSV text in a JSON body
type UploadCasesRequest struct {
	CSV string `json:"csv" validate:"required"`
}

// UploadCasesResponse lists the cases now in the registry
type UploadCasesResponse struct {
	Count int           `json:"count"`
	Cases []domain.Case `json:"cases"`
}

// HandleUpload replaces the session's cases with an uploaded table
// @Summary Upload cases
// @Description Accepts raw CSV text or a JSON body {"csv": "..."}; header Case_ID,Case_Type,Region,Priority,Points,Date_Filled,Description
// @Tags cases
// @Accept plain
// @Accept json
// @Produce json
// @Param code path string true "Session code"
// @Param X-Participant-Token header string true "Admin participant token"
// @Success 201 {object} UploadCasesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{code}/cases/upload [post]
func (h *CaseHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	actor, _ := ParticipantFromContext(r.Context())

	csvText, ok := readCSVBody(w, r)
	if !ok {
		return
	}

	cases, err := h.intake.UploadCases(r.Context(), SessionFromContext(r.Context()), actor, csvText)
	if err != nil {
		respondServiceError(w, r, LogMsgUploadFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, UploadCasesResponse{Count: len(cases), Cases: cases})
}

func readCSVBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == ContentTypeJSON {
		var req UploadCasesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.CSV) == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return "", false
		}
		return req.CSV, true
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return "", false
	}
	if strings.TrimSpace(string(body)) == "" {
		respondError(w, http.StatusBadRequest, ErrMsgEmptyUpload)
		return "", false
	}
	return string(body), true
}
