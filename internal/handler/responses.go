package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/CaseAssign_Go/internal/caseload"
	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// encode first so a failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(logMsg, "error", err)
	} else {
		log.Warn(logMsg, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP statuses and
// messages users can act on
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, ErrMsgRecordNotFoundError
	case errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusNotFound, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrParticipantNotFound):
		return http.StatusUnauthorized, ErrMsgParticipantNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgCredentialsError
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError
	case errors.Is(err, domain.ErrSessionFull):
		return http.StatusConflict, ErrMsgSessionFullError
	case errors.Is(err, domain.ErrCaseUnavailable):
		return http.StatusConflict, ErrMsgCaseUnavailableError
	case errors.Is(err, domain.ErrBudgetExceeded):
		return http.StatusConflict, ErrMsgBudgetExceededError
	case errors.Is(err, domain.ErrCasesLocked):
		return http.StatusConflict, ErrMsgCasesLockedError
	case errors.Is(err, domain.ErrAlreadySubmitted):
		return http.StatusConflict, ErrMsgAlreadySubmittedErr
	case errors.Is(err, domain.ErrAuctionResolved):
		return http.StatusConflict, ErrMsgAuctionResolvedError
	case errors.Is(err, domain.ErrWrongMode):
		return http.StatusBadRequest, ErrMsgWrongModeError
	case errors.Is(err, domain.ErrBidOutOfRange):
		return http.StatusBadRequest, ErrMsgBidOutOfRangeError
	case errors.Is(err, domain.ErrBidPrecision):
		return http.StatusBadRequest, ErrMsgBidPrecisionError
	case errors.Is(err, domain.ErrInvalidCSV):
		var rowErr *caseload.RowError
		if errors.As(err, &rowErr) {
			return http.StatusBadRequest, rowErr.Error()
		}
		return http.StatusBadRequest, domain.ErrMsgInvalidCSV
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
