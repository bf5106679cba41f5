package auction

// Log messages
const (
	LogMsgBidsRecorded    = "Bids recorded"
	LogMsgAuctionResolved = "Auction resolved"
	LogMsgResolveSkipped  = "Auction already resolved, skipping"
	LogMsgForceResolve    = "Force resolving auction"
	LogMsgPublishFailed   = "Failed to publish auction event"
	LogMsgLateArrival     = "Bids arrived after the barrier opened"
	LogMsgTieBroken       = "Tie broken at random"
)

// Error contexts
const (
	ErrContextSubmit  = "failed to submit bids"
	ErrContextResults = "failed to load auction results"
	ErrContextWait    = "stopped waiting for auction resolution"
)
