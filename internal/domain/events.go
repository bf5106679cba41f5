package domain

// Event type constants used for event bus subscriptions and the live stream.
//
// Event types follow the pattern: <entity>.<action> (e.g., "case.claimed")
const (
	// EventTypeCaseClaimed is published when a greedy claim succeeds
	EventTypeCaseClaimed = "case.claimed"

	// EventTypeCaseReleased is published when an owner releases a case
	EventTypeCaseReleased = "case.released"

	// EventTypePoolReplenished is published when synthetic cases are added to the pool
	EventTypePoolReplenished = "pool.replenished"

	// EventTypeCasesUploaded is published when an admin replaces the case table
	EventTypeCasesUploaded = "cases.uploaded"

	// EventTypeBidsSubmitted is published when a judge arrives at the auction barrier
	EventTypeBidsSubmitted = "auction.bids_submitted"

	// EventTypeAuctionResolved is published once per session after the resolver runs
	EventTypeAuctionResolved = "auction.resolved"

	// EventTypeRoundAdvanced is published when a greedy session moves to the next round
	EventTypeRoundAdvanced = "round.advanced"
)
