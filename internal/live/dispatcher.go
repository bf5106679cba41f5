// Package live maps live-channel action messages onto the greedy engine.
package live

import (
	"context"
	"errors"

	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/greedy"
	"github.com/osse101/CaseAssign_Go/internal/logger"
	"github.com/osse101/CaseAssign_Go/internal/metrics"
	"github.com/osse101/CaseAssign_Go/internal/session"
)

// Message is a request on the live channel
type Message struct {
	Action string `json:"action"`
	CaseID *int   `json:"case_id,omitempty"`
}

// Response is the typed outcome sent back to the caller
type Response struct {
	Action        domain.ClaimOutcome `json:"action"`
	CaseID        int                 `json:"case_id,omitempty"`
	Cases         []domain.Case       `json:"cases,omitempty"`
	SelectedCases []int               `json:"selected_cases,omitempty"`
	Budget        int                 `json:"budget,omitempty"`
	Spent         int                 `json:"spent,omitempty"`
	Overflow      int                 `json:"overflow,omitempty"`
	Message       string              `json:"message,omitempty"`
}

// Dispatcher routes live messages to the greedy service
type Dispatcher struct {
	greedy greedy.Service
}

// NewDispatcher creates a new live dispatcher
func NewDispatcher(greedySvc greedy.Service) *Dispatcher {
	return &Dispatcher{greedy: greedySvc}
}

// Handle executes msg for participantID. Claim conflicts come back as typed
// outcomes; only faults such as an unknown participant are returned as errors.
func (d *Dispatcher) Handle(ctx context.Context, sess *session.Session, participantID int, msg Message) (*Response, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgDispatch, "session", sess.Code, "participant_id", participantID, "action", msg.Action)

	var (
		resp *Response
		err  error
	)
	switch msg.Action {
	case ActionLoad:
		resp, err = d.load(ctx, sess, participantID)
	case ActionSelectCase:
		if msg.CaseID == nil {
			resp = invalid(MsgMissingCaseID)
			break
		}
		resp, err = d.selectCase(ctx, sess, participantID, *msg.CaseID)
	case ActionUnselectCase:
		if msg.CaseID == nil {
			resp = invalid(MsgMissingCaseID)
			break
		}
		resp, err = d.unselectCase(ctx, sess, participantID, *msg.CaseID)
	default:
		log.Warn(LogMsgInvalidAction, "action", msg.Action)
		resp = invalid(MsgUnknownAction)
	}
	if err != nil {
		return nil, err
	}

	metrics.ClaimOutcomes.WithLabelValues(string(resp.Action)).Inc()
	return resp, nil
}

// Invalid returns the response for a message that could not be decoded.
func Invalid() *Response {
	metrics.ClaimOutcomes.WithLabelValues(string(domain.OutcomeInvalidAction)).Inc()
	return invalid(MsgInvalidMessage)
}

func invalid(message string) *Response {
	return &Response{Action: domain.OutcomeInvalidAction, Message: message}
}

func (d *Dispatcher) load(ctx context.Context, sess *session.Session, participantID int) (*Response, error) {
	pool, err := d.greedy.ListAvailable(ctx, sess, participantID)
	if err != nil {
		return nil, err
	}
	return &Response{
		Action:        domain.OutcomeLoad,
		Cases:         pool.Cases,
		SelectedCases: pool.SelectedCases,
		Budget:        pool.Budget,
		Spent:         pool.Spent,
	}, nil
}

func (d *Dispatcher) selectCase(ctx context.Context, sess *session.Session, participantID, caseID int) (*Response, error) {
	_, err := d.greedy.Claim(ctx, sess, participantID, caseID)

	var overflow *domain.BudgetExceededError
	switch {
	case err == nil:
		return &Response{Action: domain.OutcomeCaseAssigned, CaseID: caseID}, nil
	case errors.As(err, &overflow):
		return &Response{Action: domain.OutcomeExceedBudget, CaseID: caseID, Overflow: overflow.Overflow}, nil
	case errors.Is(err, domain.ErrCaseNotFound):
		return &Response{Action: domain.OutcomeCaseNotFound, CaseID: caseID}, nil
	case errors.Is(err, domain.ErrCaseUnavailable):
		return &Response{Action: domain.OutcomeCaseUnavailable, CaseID: caseID}, nil
	default:
		return nil, err
	}
}

func (d *Dispatcher) unselectCase(ctx context.Context, sess *session.Session, participantID, caseID int) (*Response, error) {
	if _, err := d.greedy.Release(ctx, sess, participantID, caseID); err != nil {
		return nil, err
	}
	return &Response{Action: domain.OutcomeCaseUnselected, CaseID: caseID}, nil
}
