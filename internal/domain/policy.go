package domain

import "fmt"

// Mode selects which assignment engine a session runs
type Mode string

const (
	ModeAuction Mode = "auction"
	ModeGreedy  Mode = "greedy"
)

// PayoffPolicy decides what a winning bidder earns
type PayoffPolicy string

const (
	// PayoffSpread pays BidMax minus the winning bid
	PayoffSpread PayoffPolicy = "spread"
	// PayoffBid pays the winning bid itself
	PayoffBid PayoffPolicy = "bid"
)

// AgingCadence decides when unassigned cases gain a point
type AgingCadence string

const (
	AgingOff   AgingCadence = "off"
	AgingPoll  AgingCadence = "poll"
	AgingRound AgingCadence = "round"
)

// IngestPolicy decides how CSV rows with missing fields are treated
type IngestPolicy string

const (
	IngestStrict  IngestPolicy = "strict"
	IngestLenient IngestPolicy = "lenient"
)

// ParseMode validates a mode string
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuction, ModeGreedy:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: mode %q", ErrInvalidInput, s)
}

// ParsePayoffPolicy validates a payoff policy string
func ParsePayoffPolicy(s string) (PayoffPolicy, error) {
	switch PayoffPolicy(s) {
	case PayoffSpread, PayoffBid:
		return PayoffPolicy(s), nil
	}
	return "", fmt.Errorf("%w: payoff policy %q", ErrInvalidInput, s)
}

// ParseAgingCadence validates an aging cadence string
func ParseAgingCadence(s string) (AgingCadence, error) {
	switch AgingCadence(s) {
	case AgingOff, AgingPoll, AgingRound:
		return AgingCadence(s), nil
	}
	return "", fmt.Errorf("%w: aging cadence %q", ErrInvalidInput, s)
}

// ParseIngestPolicy validates an ingest policy string
func ParseIngestPolicy(s string) (IngestPolicy, error) {
	switch IngestPolicy(s) {
	case IngestStrict, IngestLenient:
		return IngestPolicy(s), nil
	}
	return "", fmt.Errorf("%w: ingest policy %q", ErrInvalidInput, s)
}
