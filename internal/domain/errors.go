package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Case errors
	ErrMsgCaseNotFound    = "case not found"
	ErrMsgCaseUnavailable = "case unavailable"
	ErrMsgBudgetExceeded  = "claim exceeds budget"
	ErrMsgCasesLocked     = "cases are locked once assignment has started"

	// Auction errors
	ErrMsgBidOutOfRange    = "bid out of range"
	ErrMsgBidPrecision     = "bid has more than two decimal places"
	ErrMsgAlreadySubmitted = "bids already submitted"
	ErrMsgAuctionResolved  = "auction already resolved"

	// Login errors
	ErrMsgInvalidCredentials  = "invalid username or password"
	ErrMsgForbidden           = "action requires a different role"
	ErrMsgParticipantNotFound = "participant not found"
	ErrMsgSessionFull         = "session is full"

	// Session errors
	ErrMsgSessionNotFound = "session not found"
	ErrMsgWrongMode       = "operation not available in this session mode"

	// CSV errors
	ErrMsgInvalidCSV = "invalid case table"

	// Persistence errors
	ErrMsgRecordNotFound = "session record not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrCaseNotFound    = errors.New(ErrMsgCaseNotFound)
	ErrCaseUnavailable = errors.New(ErrMsgCaseUnavailable)
	ErrBudgetExceeded  = errors.New(ErrMsgBudgetExceeded)
	ErrCasesLocked     = errors.New(ErrMsgCasesLocked)

	ErrBidOutOfRange    = errors.New(ErrMsgBidOutOfRange)
	ErrBidPrecision     = errors.New(ErrMsgBidPrecision)
	ErrAlreadySubmitted = errors.New(ErrMsgAlreadySubmitted)
	ErrAuctionResolved  = errors.New(ErrMsgAuctionResolved)

	ErrInvalidCredentials  = errors.New(ErrMsgInvalidCredentials)
	ErrForbidden           = errors.New(ErrMsgForbidden)
	ErrParticipantNotFound = errors.New(ErrMsgParticipantNotFound)
	ErrSessionFull         = errors.New(ErrMsgSessionFull)

	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrWrongMode       = errors.New(ErrMsgWrongMode)

	ErrInvalidCSV = errors.New(ErrMsgInvalidCSV)

	ErrRecordNotFound = errors.New(ErrMsgRecordNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// BudgetExceededError carries how many points a rejected claim would overshoot by
type BudgetExceededError struct {
	CaseID   int
	Overflow int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("%s: case %d over by %d points", ErrMsgBudgetExceeded, e.CaseID, e.Overflow)
}

// Unwrap lets errors.Is match ErrBudgetExceeded
func (e *BudgetExceededError) Unwrap() error {
	return ErrBudgetExceeded
}
