package metrics

import (
	"context"

	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/event"
	"github.com/osse101/CaseAssign_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CaseClaimed,
		event.CaseReleased,
		event.PoolReplenished,
		event.CasesUploaded,
		event.BidsSubmitted,
		event.AuctionResolved,
		event.RoundAdvanced,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CaseReleased:
		CasesReleased.Inc()

	case event.PoolReplenished:
		payload, err := event.DecodePayload[domain.PoolReplenishedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		CasesReplenished.Add(float64(len(payload.AddedCases)))

	case event.CasesUploaded:
		payload, err := event.DecodePayload[domain.CasesUploadedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		CasesUploaded.Add(float64(payload.CaseCount))

	case event.BidsSubmitted:
		payload, err := event.DecodePayload[domain.BidsSubmittedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		BidsSubmitted.Add(float64(payload.BidCount))

	case event.AuctionResolved:
		payload, err := event.DecodePayload[domain.AuctionResolvedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		trigger := TriggerBarrier
		if payload.Forced {
			trigger = TriggerDeadline
		}
		AuctionsResolved.WithLabelValues(trigger).Inc()
		AuctionAssignments.Add(float64(len(payload.Assignments)))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
