package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// Session returns the session code the event belongs to, if any.
func (e Event) Session() string {
	if e.Metadata == nil {
		return ""
	}
	code, _ := e.Metadata[MetadataKeySession].(string)
	return code
}

// Event types
const (
	CaseClaimed     Type = domain.EventTypeCaseClaimed
	CaseReleased    Type = domain.EventTypeCaseReleased
	PoolReplenished Type = domain.EventTypePoolReplenished
	CasesUploaded   Type = domain.EventTypeCasesUploaded
	BidsSubmitted   Type = domain.EventTypeBidsSubmitted
	AuctionResolved Type = domain.EventTypeAuctionResolved
	RoundAdvanced   Type = domain.EventTypeRoundAdvanced
)

func newSessionEvent(code string, t Type, payload interface{}) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: Metadata{MetadataKeySession: code},
	}
}

// NewCaseClaimedEvent creates a case.claimed event
func NewCaseClaimedEvent(code string, participantID int, c domain.Case) Event {
	return newSessionEvent(code, CaseClaimed, domain.CaseClaimedPayload{
		SessionCode:   code,
		ParticipantID: participantID,
		CaseID:        c.ID,
		Points:        c.Points,
		Timestamp:     time.Now().Unix(),
	})
}

// NewCaseReleasedEvent creates a case.released event
func NewCaseReleasedEvent(code string, participantID, caseID int) Event {
	return newSessionEvent(code, CaseReleased, domain.CaseReleasedPayload{
		SessionCode:   code,
		ParticipantID: participantID,
		CaseID:        caseID,
		Timestamp:     time.Now().Unix(),
	})
}

// NewPoolReplenishedEvent creates a pool.replenished event
func NewPoolReplenishedEvent(code string, added []domain.Case, unassigned int) Event {
	return newSessionEvent(code, PoolReplenished, domain.PoolReplenishedPayload{
		SessionCode: code,
		AddedCases:  added,
		Unassigned:  unassigned,
		Timestamp:   time.Now().Unix(),
	})
}

// NewCasesUploadedEvent creates a cases.uploaded event
func NewCasesUploadedEvent(code string, count int) Event {
	return newSessionEvent(code, CasesUploaded, domain.CasesUploadedPayload{
		SessionCode: code,
		CaseCount:   count,
		Timestamp:   time.Now().Unix(),
	})
}

// NewBidsSubmittedEvent creates an auction.bids_submitted event
func NewBidsSubmittedEvent(code string, participantID, bidCount, pending int) Event {
	return newSessionEvent(code, BidsSubmitted, domain.BidsSubmittedPayload{
		SessionCode:   code,
		ParticipantID: participantID,
		BidCount:      bidCount,
		Pending:       pending,
		Timestamp:     time.Now().Unix(),
	})
}

// NewAuctionResolvedEvent creates an auction.resolved event
func NewAuctionResolvedEvent(code string, assignments []domain.Assignment, unbid []int, forced bool) Event {
	return newSessionEvent(code, AuctionResolved, domain.AuctionResolvedPayload{
		SessionCode:  code,
		Assignments:  assignments,
		UnbidCaseIDs: unbid,
		Forced:       forced,
		Timestamp:    time.Now().Unix(),
	})
}

// NewRoundAdvancedEvent creates a round.advanced event
func NewRoundAdvancedEvent(code string, round int) Event {
	return newSessionEvent(code, RoundAdvanced, domain.RoundAdvancedPayload{
		SessionCode: code,
		Round:       round,
		Timestamp:   time.Now().Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber for the event type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
