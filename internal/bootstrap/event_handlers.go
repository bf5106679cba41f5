package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/CaseAssign_Go/internal/event"
	"github.com/osse101/CaseAssign_Go/internal/metrics"
	"github.com/osse101/CaseAssign_Go/internal/sse"
	"github.com/osse101/CaseAssign_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus      event.Bus
	Hub           *sse.Hub
	AuctionWorker *worker.AuctionWorker
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event counters)
// - SSE subscriber (fans session events out to stream clients)
// - Auction worker (drops deadlines of auctions that resolved early)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgStreamSubscriberRegistered)
	}

	if deps.AuctionWorker != nil {
		deps.AuctionWorker.Subscribe(deps.EventBus)
	}

	return nil
}
