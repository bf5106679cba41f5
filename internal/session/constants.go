package session

import "time"

// Defaults
const (
	DefaultJudges       = 3
	DefaultInitialCases = 5
	DefaultBidMin       = 0
	DefaultBidMax       = 10
	DefaultBudget       = 0
	DefaultMinPool      = 5
	DefaultPointsMin    = 1
	DefaultPointsMax    = 10
	DefaultCapacity     = 256
	DefaultIdleTTL      = 6 * time.Hour
	MaxJudges           = 500
)

// Session codes
const (
	CodeAlphabet    = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	CodeLength      = 6
	CodeMaxAttempts = 5
)

// Log messages
const (
	LogMsgSessionCreated   = "Session created"
	LogMsgSessionEvicted   = "Session evicted"
	LogMsgParticipantLogin = "Participant logged in"
	LogMsgLoginRejected    = "Login rejected"
)

// Error contexts
const (
	ErrContextGenerateCode = "failed to generate session code"
	ErrContextBarrier      = "failed to create auction barrier"
	ErrContextInitialCases = "failed to seed initial cases"
	ErrMsgCodeExhausted    = "could not allocate a unique session code"
)
