package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	LogMsgFailedToRollback          = "Failed to rollback transaction"
)

// Error Messages - Results Operations
const (
	ErrMsgFailedToSaveSession      = "failed to save session"
	ErrMsgFailedToSaveParticipants = "failed to save participant results"
	ErrMsgFailedToSaveCases        = "failed to save case results"
	ErrMsgFailedToGetSession       = "failed to get session"
	ErrMsgFailedToGetParticipants  = "failed to get participant results"
	ErrMsgFailedToGetCases         = "failed to get case results"
	ErrMsgFailedToListSessions     = "failed to list sessions"
	ErrMsgInvalidPayoff            = "invalid stored payoff"
)
