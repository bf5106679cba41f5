package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CaseAssign_Go/internal/event"
	"github.com/osse101/CaseAssign_Go/internal/scheduler"
	"github.com/osse101/CaseAssign_Go/internal/server"
	"github.com/osse101/CaseAssign_Go/internal/sse"
	"github.com/osse101/CaseAssign_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	AuctionWorker      *worker.AuctionWorker
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	DeadLetter         *event.DeadLetterWriter
	Repos              *Repositories
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in this order:
// 1. Event streams (open streams would hold the server shutdown)
// 2. HTTP server (stop accepting new requests)
// 3. Auction deadlines and periodic jobs
// 4. Event publisher (flush pending retries)
// 5. Persistence pool (drain queued writes)
// 6. Dead-letter file and database
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.AuctionWorker != nil {
		if err := components.AuctionWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgAuctionWorkerFailed, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	// Stop waits for queued writes, so it runs after the last publisher retry
	if components.Pool != nil {
		components.Pool.Stop()
	}

	if components.DeadLetter != nil {
		if err := components.DeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	if components.Repos != nil {
		components.Repos.Close()
	}

	slog.Info(LogMsgServerStopped)
}
