package worker

import (
	"context"

	"github.com/osse101/CaseAssign_Go/internal/auction"
	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/event"
	"github.com/osse101/CaseAssign_Go/internal/logger"
	"github.com/osse101/CaseAssign_Go/internal/session"
)

// AuctionWorker force-resolves auction sessions whose bid deadline passes
// before every judge has submitted
type AuctionWorker struct {
	BaseWorker
	service auction.Service
}

// NewAuctionWorker creates a new AuctionWorker
func NewAuctionWorker(service auction.Service) *AuctionWorker {
	w := &AuctionWorker{service: service}
	w.init()
	return w
}

// Subscribe cancels deadlines of auctions that resolved on their own
func (w *AuctionWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.AuctionResolved, w.handleAuctionResolved)
}

func (w *AuctionWorker) handleAuctionResolved(_ context.Context, evt event.Event) error {
	w.Cancel(evt.Session())
	return nil
}

// Schedule starts the bid deadline for an auction session. Sessions without
// a deadline and greedy sessions are ignored.
func (w *AuctionWorker) Schedule(ctx context.Context, sess *session.Session) {
	deadline := sess.Settings.AuctionDeadline
	if sess.Settings.Mode != domain.ModeAuction || deadline <= 0 {
		return
	}

	logger.FromContext(ctx).Info(LogMsgSchedulingDeadline, "session", sess.Code, "duration", deadline)
	w.schedule(sess.Code, deadline, func() {
		w.expire(sess)
	})
}

// Cancel drops the pending deadline for a session, if any
func (w *AuctionWorker) Cancel(code string) {
	if w.stopTimer(code) {
		logger.FromContext(context.Background()).Debug(LogMsgDeadlineCancelled, "session", code)
	}
}

// Pending returns the number of scheduled deadlines
func (w *AuctionWorker) Pending() int {
	return w.pending()
}

func (w *AuctionWorker) expire(sess *session.Session) {
	ctx := logger.WithSession(context.Background(), sess.Code)
	log := logger.FromContext(ctx)
	log.Info(LogMsgExecutingDeadline)

	released, err := w.service.ForceResolve(ctx, sess)
	if err != nil {
		log.Error(LogMsgFailedToForceResolve, "error", err)
		return
	}
	if !released {
		log.Debug(LogMsgDeadlineResolvedNothing)
	}
}

// Shutdown cancels all pending deadlines and waits for in-flight resolutions
func (w *AuctionWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, WorkerNameAuctionDeadline)
}
