package repository

import (
	"context"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// Results defines storage for session outcomes shown after the experiment
type Results interface {
	// SaveSession upserts the session, every participant's assigned case
	// list and payoff, and every case's status and owner.
	SaveSession(ctx context.Context, record *domain.SessionRecord) error
	GetSession(ctx context.Context, code string) (*domain.SessionRecord, error)
	ListSessions(ctx context.Context) ([]string, error)
}
