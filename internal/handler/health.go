package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/CaseAssign_Go/internal/database"
	"github.com/osse101/CaseAssign_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Sessions int    `json:"sessions"`
}

// SessionCounter reports how many sessions are live
type SessionCounter interface {
	Len() int
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz(sessions SessionCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Sessions: sessions.Len()})
	}
}

// HandleReadyz checks the results database when one is configured
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(sessions SessionCounter, dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dbPool == nil {
			respondJSON(w, http.StatusOK, HealthResponse{
				Status:   "ok",
				Message:  "in-memory results store",
				Sessions: sessions.Len(),
			})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:   "unavailable",
				Message:  "database connection failed",
				Sessions: sessions.Len(),
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Sessions: sessions.Len()})
	}
}
