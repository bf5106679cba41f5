package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CaseAssign_Go/internal/concurrency"
	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/logger"
	"github.com/osse101/CaseAssign_Go/internal/metrics"
	"github.com/osse101/CaseAssign_Go/internal/repository"
	"github.com/osse101/CaseAssign_Go/internal/session"
)

// ResultsPersister writes session results through the worker pool. Records
// for the same session are coalesced so only the newest snapshot is written,
// and writes for one session never overlap.
type ResultsPersister struct {
	pool  *Pool
	repo  repository.Results
	locks *concurrency.LockManager

	mu      sync.Mutex
	pending map[string]*domain.SessionRecord
}

// NewResultsPersister creates a persister backed by pool and repo
func NewResultsPersister(pool *Pool, repo repository.Results) *ResultsPersister {
	return &ResultsPersister{
		pool:    pool,
		repo:    repo,
		locks:   concurrency.NewLockManager(),
		pending: make(map[string]*domain.SessionRecord),
	}
}

// Persist snapshots sess and queues a write
func (p *ResultsPersister) Persist(ctx context.Context, sess *session.Session) {
	record := sess.Snapshot().Record(time.Now())

	p.mu.Lock()
	_, queued := p.pending[record.Code]
	p.pending[record.Code] = record
	p.mu.Unlock()

	if queued {
		return
	}
	if !p.pool.Enqueue(&PersistResultsJob{code: record.Code, persister: p}) {
		p.mu.Lock()
		delete(p.pending, record.Code)
		p.mu.Unlock()

		metrics.PersistenceFailures.Inc()
		logger.FromContext(ctx).Warn(LogMsgPersistenceDropped, "session", record.Code)
	}
}

func (p *ResultsPersister) take(code string) *domain.SessionRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	record := p.pending[code]
	delete(p.pending, code)
	return record
}

// PersistResultsJob writes the newest pending record of one session
type PersistResultsJob struct {
	code      string
	persister *ResultsPersister
}

// Name identifies the job in logs
func (j *PersistResultsJob) Name() string {
	return JobNamePersistResults
}

// Process saves the record
func (j *PersistResultsJob) Process(ctx context.Context) error {
	ctx = logger.WithSession(ctx, j.code)
	p := j.persister

	return p.locks.WithLock(concurrency.ResultsKey(j.code), func() error {
		record := p.take(j.code)
		if record == nil {
			return nil
		}
		if err := p.repo.SaveSession(ctx, record); err != nil {
			metrics.PersistenceFailures.Inc()
			return fmt.Errorf("%s: %w", ErrContextSaveResults, err)
		}
		logger.FromContext(ctx).Debug(LogMsgResultsSaved,
			"participants", len(record.Participants),
			"cases", len(record.Cases))
		return nil
	})
}
