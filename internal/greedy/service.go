// Package greedy implements first-come case claiming with an optional budget.
package greedy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/CaseAssign_Go/internal/concurrency"
	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/event"
	"github.com/osse101/CaseAssign_Go/internal/logger"
	"github.com/osse101/CaseAssign_Go/internal/session"
)

// Pool is what a judge sees when loading the claim page
type Pool struct {
	Cases         []domain.Case `json:"cases"`
	SelectedCases []int         `json:"selected_cases"`
	Budget        int           `json:"budget,omitempty"`
	Spent         int           `json:"spent"`
	Round         int           `json:"round"`
}

// Persister stores a session's current assignments for display
type Persister interface {
	Persist(ctx context.Context, sess *session.Session)
}

// Service defines the greedy selection operations
type Service interface {
	ListAvailable(ctx context.Context, sess *session.Session, participantID int) (*Pool, error)
	Claim(ctx context.Context, sess *session.Session, participantID, caseID int) (*domain.Case, error)
	Release(ctx context.Context, sess *session.Session, participantID, caseID int) (bool, error)
	NextRound(ctx context.Context, sess *session.Session) (int, error)
	Summary(ctx context.Context, sess *session.Session) ([]domain.JudgeSummary, error)
	Forget(sess *session.Session)
}

type service struct {
	locks     *concurrency.LockManager
	eventBus  event.Bus
	persister Persister
}

// NewService creates a new greedy selection service
func NewService(locks *concurrency.LockManager, eventBus event.Bus, persister Persister) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		locks:     locks,
		eventBus:  eventBus,
		persister: persister,
	}
}

func requireGreedy(sess *session.Session) error {
	if sess.Settings.Mode != domain.ModeGreedy {
		return domain.ErrWrongMode
	}
	return nil
}

// ListAvailable returns the unassigned cases plus the caller's claims, aging
// and refilling the pool first when the session is configured to.
func (s *service) ListAvailable(ctx context.Context, sess *session.Session, participantID int) (*Pool, error) {
	if err := requireGreedy(sess); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	var (
		pool  Pool
		added []domain.Case
		left  int
	)
	err := sess.Update(func(st *session.State) error {
		p, err := st.Participant(participantID)
		if err != nil {
			return err
		}

		if sess.Settings.Aging == domain.AgingPoll {
			if n := st.Cases.AgeUnassigned(AgingDelta); n > 0 {
				log.Debug(LogMsgPoolAged, "session", sess.Code, "cases", n)
			}
		}
		added = replenish(sess, st)
		left = st.Cases.UnassignedCount()

		pool = Pool{
			Cases:         st.Cases.Unassigned(),
			SelectedCases: append([]int{}, p.AssignedCaseIDs...),
			Budget:        p.Budget,
			Spent:         st.Cases.PointsOwnedBy(p.ID),
			Round:         st.Round,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextList, err)
	}

	if len(added) > 0 {
		log.Info(LogMsgPoolReplenished, "session", sess.Code, "added", len(added))
		s.publish(ctx, event.NewPoolReplenishedEvent(sess.Code, added, left))
	}
	return &pool, nil
}

// Claim assigns caseID to participantID if it is still unassigned and fits
// the participant's budget. Of concurrent claims on one case exactly one wins.
func (s *service) Claim(ctx context.Context, sess *session.Session, participantID, caseID int) (*domain.Case, error) {
	if err := requireGreedy(sess); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	var claimed domain.Case
	err := s.locks.WithLock(concurrency.ParticipantKey(sess.Code, participantID), func() error {
		return sess.Update(func(st *session.State) error {
			p, err := st.Participant(participantID)
			if err != nil {
				return err
			}
			if !p.IsJudge() {
				return domain.ErrForbidden
			}

			c, ok := st.Cases.Get(caseID)
			if !ok {
				return domain.ErrCaseNotFound
			}
			if c.IsAssigned() {
				return domain.ErrCaseUnavailable
			}
			if sess.Settings.BudgetEnabled() {
				if overflow := st.Cases.PointsOwnedBy(p.ID) + c.Points - p.Budget; overflow > 0 {
					return &domain.BudgetExceededError{CaseID: caseID, Overflow: overflow}
				}
			}

			c.Assign(p.ID)
			p.AddCase(caseID)
			p.Payoff = p.Payoff.Add(decimal.NewFromInt(int64(c.Points)))
			st.Claims = append(st.Claims, domain.Claim{
				ParticipantID: p.ID,
				CaseID:        caseID,
				Points:        c.Points,
				ClaimedAt:     time.Now(),
			})

			claimed = *c
			owner := p.ID
			claimed.OwnerID = &owner
			return nil
		})
	})
	if err != nil {
		log.Debug(LogMsgClaimRejected, "session", sess.Code, "participant_id", participantID, "case_id", caseID, "reason", err)
		return nil, fmt.Errorf("%s: %w", ErrContextClaim, err)
	}

	log.Info(LogMsgCaseClaimed, "session", sess.Code, "participant_id", participantID, "case_id", caseID, "points", claimed.Points)
	s.publish(ctx, event.NewCaseClaimedEvent(sess.Code, participantID, claimed))
	s.persist(ctx, sess)
	return &claimed, nil
}

// Release returns caseID to the pool if participantID owns it. It reports
// whether anything changed; releasing a case the caller does not own is a no-op.
func (s *service) Release(ctx context.Context, sess *session.Session, participantID, caseID int) (bool, error) {
	if err := requireGreedy(sess); err != nil {
		return false, err
	}

	released := false
	err := s.locks.WithLock(concurrency.ParticipantKey(sess.Code, participantID), func() error {
		return sess.Update(func(st *session.State) error {
			p, err := st.Participant(participantID)
			if err != nil {
				return err
			}
			c, ok := st.Cases.Get(caseID)
			if !ok || !c.IsOwnedBy(p.ID) {
				return nil
			}

			c.Unassign()
			p.RemoveCase(caseID)
			p.Payoff = p.Payoff.Sub(decimal.NewFromInt(int64(c.Points)))
			released = true
			return nil
		})
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextRelease, err)
	}

	if released {
		logger.FromContext(ctx).Info(LogMsgCaseReleased, "session", sess.Code, "participant_id", participantID, "case_id", caseID)
		s.publish(ctx, event.NewCaseReleasedEvent(sess.Code, participantID, caseID))
		s.persist(ctx, sess)
	}
	return released, nil
}

// NextRound advances the round counter, ages unassigned cases when the
// session ages per round, and refills the pool.
func (s *service) NextRound(ctx context.Context, sess *session.Session) (int, error) {
	if err := requireGreedy(sess); err != nil {
		return 0, err
	}
	log := logger.FromContext(ctx)

	var (
		round int
		added []domain.Case
		left  int
	)
	err := sess.Update(func(st *session.State) error {
		st.Round++
		round = st.Round
		if sess.Settings.Aging == domain.AgingRound {
			if n := st.Cases.AgeUnassigned(AgingDelta); n > 0 {
				log.Debug(LogMsgPoolAged, "session", sess.Code, "cases", n)
			}
		}
		added = replenish(sess, st)
		left = st.Cases.UnassignedCount()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextNextRound, err)
	}

	log.Info(LogMsgRoundAdvanced, "session", sess.Code, "round", round)
	s.publish(ctx, event.NewRoundAdvancedEvent(sess.Code, round))
	if len(added) > 0 {
		s.publish(ctx, event.NewPoolReplenishedEvent(sess.Code, added, left))
	}
	return round, nil
}

// Summary lists every judge holding at least one case with their cases and points.
func (s *service) Summary(_ context.Context, sess *session.Session) ([]domain.JudgeSummary, error) {
	var out []domain.JudgeSummary
	sess.View(func(st *session.State) {
		for _, judge := range st.Judges() {
			cases := st.Cases.OwnedBy(judge.ID)
			if len(cases) == 0 {
				continue
			}
			summary := domain.JudgeSummary{
				ParticipantID: judge.ID,
				Username:      judge.Username,
				Cases:         cases,
			}
			for _, c := range cases {
				summary.TotalPoints += c.Points
			}
			out = append(out, summary)
		}
	})
	if out == nil {
		out = []domain.JudgeSummary{}
	}
	return out, nil
}

// Forget drops the per-participant locks of a session leaving the store.
func (s *service) Forget(sess *session.Session) {
	sess.View(func(st *session.State) {
		for id := range st.Participants {
			s.locks.Forget(concurrency.ParticipantKey(sess.Code, id))
		}
	})
}

func replenish(sess *session.Session, st *session.State) []domain.Case {
	if sess.Settings.MinPool <= 0 {
		return nil
	}
	return st.Cases.Replenish(sess.Settings.MinPool, func() int {
		return st.RandomPoints(sess.Settings.PointsMin, sess.Settings.PointsMax)
	})
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func (s *service) persist(ctx context.Context, sess *session.Session) {
	if s.persister != nil {
		s.persister.Persist(ctx, sess)
	}
}

// IsRejection reports whether err is a typed claim outcome rather than a fault.
func IsRejection(err error) bool {
	return errors.Is(err, domain.ErrCaseNotFound) ||
		errors.Is(err, domain.ErrCaseUnavailable) ||
		errors.Is(err, domain.ErrBudgetExceeded)
}
