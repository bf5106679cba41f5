package worker

import "time"

// Pool defaults
const (
	DefaultWorkers    = 2
	DefaultQueueSize  = 256
	DefaultJobTimeout = 10 * time.Second
)

// Log Messages - Worker Pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// Log Messages - Results Persistence
const (
	LogMsgResultsSaved       = "Session results saved"
	ErrContextSaveResults    = "failed to save session results"
	JobNamePersistResults    = "persist_results"
	LogMsgPersistenceDropped = "Session results not queued"
)

// Log Messages - Auction Deadline Worker
const (
	WorkerNameAuctionDeadline     = "auction deadline worker"
	LogMsgSchedulingDeadline      = "Scheduling auction deadline"
	LogMsgDeadlineCancelled       = "Auction deadline cancelled"
	LogMsgExecutingDeadline       = "Auction deadline reached"
	LogMsgFailedToForceResolve    = "Failed to force resolve auction"
	LogMsgDeadlineResolvedNothing = "Auction already resolved at deadline"
)
