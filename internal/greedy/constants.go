package greedy

// AgingDelta is the number of points an unassigned case gains per aging step
const AgingDelta = 1

// Log messages
const (
	LogMsgCaseClaimed     = "Case claimed"
	LogMsgClaimRejected   = "Case claim rejected"
	LogMsgCaseReleased    = "Case released"
	LogMsgPoolReplenished = "Case pool replenished"
	LogMsgPoolAged        = "Unassigned cases aged"
	LogMsgRoundAdvanced   = "Round advanced"
	LogMsgPublishFailed   = "Failed to publish greedy event"
)

// Error contexts
const (
	ErrContextClaim     = "failed to claim case"
	ErrContextRelease   = "failed to release case"
	ErrContextList      = "failed to list available cases"
	ErrContextNextRound = "failed to advance round"
)
