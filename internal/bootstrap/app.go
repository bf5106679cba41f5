package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/CaseAssign_Go/internal/auction"
	"github.com/osse101/CaseAssign_Go/internal/concurrency"
	"github.com/osse101/CaseAssign_Go/internal/config"
	"github.com/osse101/CaseAssign_Go/internal/greedy"
	"github.com/osse101/CaseAssign_Go/internal/handler"
	"github.com/osse101/CaseAssign_Go/internal/intake"
	"github.com/osse101/CaseAssign_Go/internal/scheduler"
	"github.com/osse101/CaseAssign_Go/internal/server"
	"github.com/osse101/CaseAssign_Go/internal/session"
	"github.com/osse101/CaseAssign_Go/internal/sse"
	"github.com/osse101/CaseAssign_Go/internal/worker"
)

// App is the fully wired server process
type App struct {
	Config        *config.Config
	Experiment    *config.Experiment
	Events        *EventSystem
	Repos         *Repositories
	Sessions      *session.Manager
	Pool          *worker.Pool
	AuctionWorker *worker.AuctionWorker
	Scheduler     *scheduler.Scheduler
	Hub           *sse.Hub
	Server        *server.Server
}

// NewApp builds every component from cfg. Background components are started;
// the HTTP listener is started by Run.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	handler.InitValidator()

	experiment, err := config.LoadExperiment(cfg.ExperimentConfigPath, cfg.AuctionDeadline)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadExperiment, err)
	}

	events, err := InitializeEventSystem(cfg)
	if err != nil {
		return nil, err
	}

	repos, err := InitializeRepositories(ctx, cfg)
	if err != nil {
		_ = events.DeadLetter.Close()
		return nil, err
	}

	pool := worker.NewPool(cfg.Workers, cfg.QueueSize)
	pool.Start()
	persister := worker.NewResultsPersister(pool, repos.Results)

	greedySvc := greedy.NewService(concurrency.NewLockManager(), events.Publisher, persister)
	auctionSvc := auction.NewService(events.Publisher, persister)
	intakeSvc := intake.NewService(events.Publisher, persister)
	auctionWorker := worker.NewAuctionWorker(auctionSvc)

	sessions := session.NewManager(cfg.SessionCapacity, cfg.SessionTTL)
	sessions.HandleAuctionRelease(auctionSvc.HandleRelease)
	sessions.OnCreate(func(ctx context.Context, s *session.Session) {
		auctionWorker.Schedule(ctx, s)
		persister.Persist(ctx, s)
	})
	sessions.OnEvict(func(s *session.Session) {
		auctionWorker.Cancel(s.Code)
		greedySvc.Forget(s)
	})

	sched := scheduler.New(pool)
	if cfg.CheckpointInterval > 0 {
		sched.Schedule(cfg.CheckpointInterval, scheduler.NewSessionCheckpointJob(sessions, persister))
	}

	hub := sse.NewHub()
	hub.Start()

	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:      events.Publisher,
		Hub:           hub,
		AuctionWorker: auctionWorker,
	}); err != nil {
		hub.Stop()
		sched.Stop()
		pool.Stop()
		repos.Close()
		_ = events.DeadLetter.Close()
		return nil, err
	}

	srv := server.NewServer(server.Options{
		Addr:            cfg.Addr(),
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
	}, server.Dependencies{
		Sessions: sessions,
		Settings: experiment.Settings,
		Greedy:   greedySvc,
		Auction:  auctionSvc,
		Intake:   intakeSvc,
		Results:  repos.Results,
		Hub:      hub,
		DBPool:   repos.readinessPool(),
	})

	return &App{
		Config:        cfg,
		Experiment:    experiment,
		Events:        events,
		Repos:         repos,
		Sessions:      sessions,
		Pool:          pool,
		AuctionWorker: auctionWorker,
		Scheduler:     sched,
		Hub:           hub,
		Server:        srv,
	}, nil
}

// Run serves HTTP until ctx is cancelled or the listener fails, then shuts
// every component down within the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info(LogMsgShutdownSignal)

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.Config.ShutdownTimeout)
		defer cancel()
		GracefulShutdown(shutdownCtx, a.shutdownComponents())
		return nil
	})

	return g.Wait()
}

func (a *App) shutdownComponents() ShutdownComponents {
	return ShutdownComponents{
		Server:             a.Server,
		AuctionWorker:      a.AuctionWorker,
		Scheduler:          a.Scheduler,
		Pool:               a.Pool,
		Hub:                a.Hub,
		ResilientPublisher: a.Events.Publisher,
		DeadLetter:         a.Events.DeadLetter,
		Repos:              a.Repos,
	}
}
