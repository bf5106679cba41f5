// Package intake loads administrator-supplied case tables into sessions.
package intake

import (
	"context"
	"fmt"

	"github.com/osse101/CaseAssign_Go/internal/auth"
	"github.com/osse101/CaseAssign_Go/internal/caseload"
	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/event"
	"github.com/osse101/CaseAssign_Go/internal/logger"
	"github.com/osse101/CaseAssign_Go/internal/session"
)

const (
	LogMsgCasesUploaded = "Case table replaced"
	LogMsgUploadFailed  = "Case table upload rejected"
	LogMsgPublishFailed = "Failed to publish upload event"

	ErrContextUpload = "failed to upload cases"
)

// Persister stores a session's current case table for display
type Persister interface {
	Persist(ctx context.Context, sess *session.Session)
}

// Service defines case table intake
type Service interface {
	UploadCases(ctx context.Context, sess *session.Session, actor domain.Participant, csvText string) ([]domain.Case, error)
}

type service struct {
	eventBus  event.Bus
	persister Persister
}

// NewService creates a new intake service. persister may be nil.
func NewService(eventBus event.Bus, persister Persister) Service {
	return &service{eventBus: eventBus, persister: persister}
}

// UploadCases parses csvText under the session's ingest policy and replaces
// the session's case table. Nothing changes if parsing fails or assignment
// has already started.
func (s *service) UploadCases(ctx context.Context, sess *session.Session, actor domain.Participant, csvText string) ([]domain.Case, error) {
	log := logger.FromContext(ctx)

	if err := auth.RequireRole(actor.Role, domain.RoleAdmin); err != nil {
		return nil, err
	}

	cases, err := caseload.Parse(csvText, sess.Settings.IngestPolicy)
	if err != nil {
		log.Warn(LogMsgUploadFailed, "session", sess.Code, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrContextUpload, err)
	}

	var loaded []domain.Case
	err = sess.Update(func(st *session.State) error {
		if len(st.Bids) > 0 || st.AuctionState == domain.AuctionStateResolved {
			return domain.ErrCasesLocked
		}
		if err := st.Cases.Replace(cases); err != nil {
			return err
		}
		loaded = st.Cases.All()
		return nil
	})
	if err != nil {
		log.Warn(LogMsgUploadFailed, "session", sess.Code, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrContextUpload, err)
	}

	log.Info(LogMsgCasesUploaded, "session", sess.Code, "cases", len(loaded), "policy", sess.Settings.IngestPolicy)
	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewCasesUploadedEvent(sess.Code, len(loaded))); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	if s.persister != nil {
		s.persister.Persist(ctx, sess)
	}
	return loaded, nil
}
