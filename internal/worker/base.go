package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CaseAssign_Go/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage timers
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[string]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// schedule runs fn in a tracked goroutine after d, replacing any timer
// already registered under key. It returns false once shut down.
func (w *BaseWorker) schedule(key string, d time.Duration, fn func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return false
	}
	if existing, ok := w.timers[key]; ok {
		existing.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		w.mu.Lock()
		select {
		case <-w.shutdown:
			w.mu.Unlock()
			return
		default:
		}
		// a newer schedule for the same key replaced this timer
		if w.timers[key] != timer {
			w.mu.Unlock()
			return
		}
		delete(w.timers, key)
		w.wg.Add(1)
		w.mu.Unlock()

		defer w.wg.Done()
		fn()
	})
	w.timers[key] = timer
	return true
}

func (w *BaseWorker) stopTimer(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	timer, ok := w.timers[key]
	if ok {
		timer.Stop()
		delete(w.timers, key)
	}
	return ok
}

func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	for key, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending "+workerName+" execution", "key", key)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
