package scheduler

const (
	JobNameSessionCheckpoint = "session_checkpoint"

	LogMsgJobScheduled  = "Periodic job scheduled"
	LogMsgJobNotQueued  = "Periodic job skipped, queue unavailable"
	LogMsgCheckpointRun = "Session checkpoint complete"
)
