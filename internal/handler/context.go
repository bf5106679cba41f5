package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/logger"
	"github.com/osse101/CaseAssign_Go/internal/session"
)

type contextKey string

const (
	sessionKey     contextKey = "session"
	participantKey contextKey = "participant"
)

// SessionLookup finds live sessions by join code
type SessionLookup interface {
	Get(code string) (*session.Session, error)
}

// LoadSession resolves the {code} URL parameter into a live session
func LoadSession(sessions SessionLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sessions.Get(chi.URLParam(r, URLParamSession))
			if err != nil {
				respondError(w, http.StatusNotFound, ErrMsgSessionNotFoundError)
				return
			}
			ctx := logger.WithSession(r.Context(), sess.Code)
			ctx = context.WithValue(ctx, sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireParticipant resolves the participant token header inside a loaded session
func RequireParticipant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		token := r.Header.Get(HeaderParticipantToken)
		if sess == nil || token == "" {
			respondError(w, http.StatusUnauthorized, ErrMsgMissingToken)
			return
		}

		p, err := sess.ParticipantByToken(token)
		if err != nil {
			respondServiceError(w, r, LogMsgLoginFailed, err)
			return
		}

		ctx := context.WithValue(r.Context(), participantKey, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session loaded by LoadSession
func SessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey).(*session.Session)
	return sess
}

// ParticipantFromContext returns the caller resolved by RequireParticipant
func ParticipantFromContext(ctx context.Context) (domain.Participant, bool) {
	p, ok := ctx.Value(participantKey).(domain.Participant)
	return p, ok
}
