package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/CaseAssign_Go/internal/barrier"
	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/event"
	"github.com/osse101/CaseAssign_Go/internal/logger"
	"github.com/osse101/CaseAssign_Go/internal/metrics"
	"github.com/osse101/CaseAssign_Go/internal/session"
)

// Persister stores a session's results once assignments are final
type Persister interface {
	Persist(ctx context.Context, sess *session.Session)
}

// Service defines the auction operations
type Service interface {
	SubmitBids(ctx context.Context, sess *session.Session, participantID int, bids map[int]decimal.Decimal) (*domain.AuctionResult, error)
	Results(ctx context.Context, sess *session.Session, participantID int, wait bool) (*domain.AuctionResult, error)
	ForceResolve(ctx context.Context, sess *session.Session) (bool, error)
	HandleRelease(sess *session.Session, forced bool)
}

type service struct {
	eventBus  event.Bus
	persister Persister
}

// NewService creates a new auction service. Install HandleRelease on the
// session manager so barriers resolve through it.
func NewService(eventBus event.Bus, persister Persister) Service {
	return &service{
		eventBus:  eventBus,
		persister: persister,
	}
}

func requireAuction(sess *session.Session) (*barrier.Barrier, error) {
	b := sess.Barrier()
	if sess.Settings.Mode != domain.ModeAuction || b == nil {
		return nil, domain.ErrWrongMode
	}
	return b, nil
}

// SubmitBids records a judge's sealed bids and arrives at the barrier. The
// judge whose arrival completes the barrier resolves the auction before this
// call returns.
func (s *service) SubmitBids(ctx context.Context, sess *session.Session, participantID int, bids map[int]decimal.Decimal) (*domain.AuctionResult, error) {
	b, err := requireAuction(sess)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	for caseID, amount := range bids {
		if !domain.IsCurrencyAmount(amount) {
			return nil, fmt.Errorf("%s: %w: case %d bid %s", ErrContextSubmit, domain.ErrBidPrecision, caseID, amount)
		}
		if amount.LessThan(sess.Settings.BidMin) || amount.GreaterThan(sess.Settings.BidMax) {
			return nil, fmt.Errorf("%s: %w: case %d bid %s outside [%s, %s]",
				ErrContextSubmit, domain.ErrBidOutOfRange, caseID, amount, sess.Settings.BidMin, sess.Settings.BidMax)
		}
	}

	now := time.Now()
	err = sess.Update(func(st *session.State) error {
		p, err := st.Participant(participantID)
		if err != nil {
			return err
		}
		if !p.IsJudge() {
			return domain.ErrForbidden
		}
		if st.AuctionState == domain.AuctionStateResolved {
			return domain.ErrAuctionResolved
		}
		if _, ok := st.Bids[participantID]; ok {
			return domain.ErrAlreadySubmitted
		}
		for caseID := range bids {
			if _, ok := st.Cases.Get(caseID); !ok {
				return fmt.Errorf("%w: case %d", domain.ErrCaseNotFound, caseID)
			}
		}

		ledger := make(map[int]domain.Bid, len(bids))
		for caseID, amount := range bids {
			ledger[caseID] = domain.Bid{
				ParticipantID: participantID,
				CaseID:        caseID,
				Amount:        amount,
				SubmittedAt:   now,
			}
		}
		st.Bids[participantID] = ledger
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSubmit, err)
	}

	log.Info(LogMsgBidsRecorded, "session", sess.Code, "participant_id", participantID, "bids", len(bids))

	// Must run without the session lock: the last arrival resolves through Update.
	if _, err := b.Arrive(participantID); err != nil {
		if !errors.Is(err, barrier.ErrAlreadyReleased) {
			return nil, fmt.Errorf("%s: %w", ErrContextSubmit, err)
		}
		log.Warn(LogMsgLateArrival, "session", sess.Code, "participant_id", participantID)
	}

	s.publish(ctx, event.NewBidsSubmittedEvent(sess.Code, participantID, len(bids), b.Pending()))
	return s.Results(ctx, sess, participantID, false)
}

// Results returns what participantID sees of the auction. With wait set it
// blocks until the auction resolves or ctx ends.
func (s *service) Results(ctx context.Context, sess *session.Session, participantID int, wait bool) (*domain.AuctionResult, error) {
	b, err := requireAuction(sess)
	if err != nil {
		return nil, err
	}

	if wait {
		if err := b.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextWait, err)
		}
	}

	var result domain.AuctionResult
	sess.View(func(st *session.State) {
		p, perr := st.Participant(participantID)
		if perr != nil {
			err = perr
			return
		}
		result = domain.AuctionResult{
			State:           st.AuctionState,
			ParticipantID:   p.ID,
			AssignedCaseIDs: append([]int{}, p.AssignedCaseIDs...),
			AssignedCases:   make([]domain.Case, 0, len(p.AssignedCaseIDs)),
			Bids:            st.BidsFor(p.ID),
			Payoff:          p.Payoff,
			Pending:         b.Pending(),
		}
		for _, id := range p.AssignedCaseIDs {
			if c, ok := st.Cases.Get(id); ok {
				cp := *c
				owner := p.ID
				cp.OwnerID = &owner
				result.AssignedCases = append(result.AssignedCases, cp)
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextResults, err)
	}
	return &result, nil
}

// ForceResolve opens the barrier with whatever bids are present. It reports
// false if the auction had already been resolved.
func (s *service) ForceResolve(ctx context.Context, sess *session.Session) (bool, error) {
	b, err := requireAuction(sess)
	if err != nil {
		return false, err
	}
	logger.FromContext(ctx).Info(LogMsgForceResolve, "session", sess.Code, "pending", b.Pending())
	return b.Release(), nil
}

// HandleRelease runs the resolver once the barrier opens.
func (s *service) HandleRelease(sess *session.Session, forced bool) {
	ctx := logger.WithSession(context.Background(), sess.Code)
	log := logger.FromContext(ctx)

	opts := Options{BidMax: sess.Settings.BidMax, Policy: sess.Settings.PayoffPolicy}
	start := time.Now()

	var outcome Outcome
	err := sess.Update(func(st *session.State) error {
		if st.AuctionState == domain.AuctionStateResolved {
			return domain.ErrAuctionResolved
		}
		outcome = Resolve(st.Cases, st.AllBids(), st.Participants, opts, st.RNG)
		st.Assignments = append(st.Assignments, outcome.Assignments...)
		st.AuctionState = domain.AuctionStateResolved
		return nil
	})
	if err != nil {
		log.Warn(LogMsgResolveSkipped, "error", err)
		return
	}
	metrics.ResolutionDuration.Observe(time.Since(start).Seconds())

	for _, a := range outcome.Assignments {
		if len(a.TiedBidders) > 1 {
			log.Debug(LogMsgTieBroken, "case_id", a.CaseID, "tied", a.TiedBidders, "winner", a.ParticipantID)
		}
	}
	log.Info(LogMsgAuctionResolved,
		"assigned", len(outcome.Assignments),
		"unbid", len(outcome.UnbidCaseIDs),
		"forced", forced)

	s.publish(ctx, event.NewAuctionResolvedEvent(sess.Code, outcome.Assignments, outcome.UnbidCaseIDs, forced))
	if s.persister != nil {
		s.persister.Persist(ctx, sess)
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
