package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of decimal places bids and payoffs carry
const CurrencyPlaces int32 = 2

// IsCurrencyAmount reports whether d fits CurrencyPlaces without rounding
func IsCurrencyAmount(d decimal.Decimal) bool {
	return d.Equal(d.Round(CurrencyPlaces))
}

// Bid is a sealed offer a judge makes for a case in auction mode
type Bid struct {
	ParticipantID int             `json:"participant_id"`
	CaseID        int             `json:"case_id"`
	Amount        decimal.Decimal `json:"amount"`
	SubmittedAt   time.Time       `json:"submitted_at"`
}

// Assignment records how a case was resolved
type Assignment struct {
	CaseID        int             `json:"case_id"`
	ParticipantID int             `json:"participant_id"`
	WinningBid    decimal.Decimal `json:"winning_bid"`
	TiedBidders   []int           `json:"tied_bidders"`
	PayoffDelta   decimal.Decimal `json:"payoff_delta"`
}

// AuctionState tracks the lifecycle of a session's auction
type AuctionState string

const (
	AuctionStateCollecting AuctionState = "collecting"
	AuctionStateResolved   AuctionState = "resolved"
)

// AuctionResult is what a judge sees once the auction has resolved
type AuctionResult struct {
	State           AuctionState    `json:"state"`
	ParticipantID   int             `json:"participant_id"`
	AssignedCaseIDs []int           `json:"assigned_case_ids"`
	AssignedCases   []Case          `json:"assigned_cases"`
	Bids            []Bid           `json:"bids"`
	Payoff          decimal.Decimal `json:"payoff"`
	Pending         int             `json:"pending"`
}
