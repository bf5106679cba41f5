package sse

import (
	"time"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// URLParamSession is the chi URL parameter holding the session code
	URLParamSession = "code"

	// QueryParamTypes restricts a stream to a comma separated list of event types
	QueryParamTypes = "types"
)

// Event types for SSE
const (
	// EventTypeConnected is the first event every client receives
	EventTypeConnected = "connected"

	// EventTypeCaseSelected is sent to every judge of a session when a case is claimed
	EventTypeCaseSelected = string(domain.OutcomeCaseSelected)

	// EventTypeCaseUnselected is sent when an owner releases a case back to the pool
	EventTypeCaseUnselected = string(domain.OutcomeCaseUnselected)

	// EventTypePoolReplenished is sent when synthetic cases are added
	EventTypePoolReplenished = "pool_replenished"

	// EventTypeCasesUploaded is sent when an admin replaces the case table
	EventTypeCasesUploaded = "cases_uploaded"

	// EventTypeBidsSubmitted is sent when a judge arrives at the auction barrier
	EventTypeBidsSubmitted = "bids_submitted"

	// EventTypeAuctionResolved is sent once the auction batch has been resolved
	EventTypeAuctionResolved = "auction_resolved"

	// EventTypeRoundAdvanced is sent when the admin starts a new greedy round
	EventTypeRoundAdvanced = "round_advanced"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)

// Error messages
const (
	ErrMsgStreamingUnsupported = "SSE not supported"
	ErrMsgMissingSession       = "session code is required"
)
