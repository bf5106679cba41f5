package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.CaseClaimed, s.handleCaseClaimed)
	s.bus.Subscribe(event.CaseReleased, s.handleCaseReleased)
	s.bus.Subscribe(event.PoolReplenished, s.handlePoolReplenished)
	s.bus.Subscribe(event.CasesUploaded, s.handleCasesUploaded)
	s.bus.Subscribe(event.BidsSubmitted, s.handleBidsSubmitted)
	s.bus.Subscribe(event.AuctionResolved, s.handleAuctionResolved)
	s.bus.Subscribe(event.RoundAdvanced, s.handleRoundAdvanced)

	slog.Info(LogMsgSubscribed,
		"types", []event.Type{
			event.CaseClaimed,
			event.CaseReleased,
			event.PoolReplenished,
			event.CasesUploaded,
			event.BidsSubmitted,
			event.AuctionResolved,
			event.RoundAdvanced,
		})
}

func (s *Subscriber) broadcast(evt event.Event, sseType string, payload interface{}) {
	s.hub.Broadcast(evt.Session(), sseType, payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", sseType, "session", evt.Session())
}

func (s *Subscriber) handleCaseClaimed(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.CaseClaimedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.broadcast(evt, EventTypeCaseSelected, CaseSelectionPayload{
		CaseID:        payload.CaseID,
		ParticipantID: payload.ParticipantID,
		Points:        payload.Points,
	})
	return nil
}

func (s *Subscriber) handleCaseReleased(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.CaseReleasedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.broadcast(evt, EventTypeCaseUnselected, CaseSelectionPayload{
		CaseID:        payload.CaseID,
		ParticipantID: payload.ParticipantID,
	})
	return nil
}

func (s *Subscriber) handlePoolReplenished(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.PoolReplenishedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	ids := make([]int, 0, len(payload.AddedCases))
	for _, c := range payload.AddedCases {
		ids = append(ids, c.ID)
	}
	s.broadcast(evt, EventTypePoolReplenished, PoolPayload{
		AddedCaseIDs: ids,
		Unassigned:   payload.Unassigned,
	})
	return nil
}

func (s *Subscriber) handleCasesUploaded(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.CasesUploadedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.broadcast(evt, EventTypeCasesUploaded, PoolPayload{CaseCount: payload.CaseCount})
	return nil
}

func (s *Subscriber) handleBidsSubmitted(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.BidsSubmittedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.broadcast(evt, EventTypeBidsSubmitted, BarrierProgressPayload{
		ParticipantID: payload.ParticipantID,
		Pending:       payload.Pending,
	})
	return nil
}

func (s *Subscriber) handleAuctionResolved(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.AuctionResolvedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	assignments := make([]AssignmentInfo, 0, len(payload.Assignments))
	for _, a := range payload.Assignments {
		assignments = append(assignments, AssignmentInfo{
			CaseID:        a.CaseID,
			ParticipantID: a.ParticipantID,
			WinningBid:    a.WinningBid.String(),
			Tied:          len(a.TiedBidders) > 1,
		})
	}
	s.broadcast(evt, EventTypeAuctionResolved, AuctionResolvedPayload{
		Assignments:  assignments,
		UnbidCaseIDs: payload.UnbidCaseIDs,
		Forced:       payload.Forced,
	})
	return nil
}

func (s *Subscriber) handleRoundAdvanced(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.RoundAdvancedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.broadcast(evt, EventTypeRoundAdvanced, RoundPayload{Round: payload.Round})
	return nil
}
