package scheduler

import (
	"context"

	"github.com/osse101/CaseAssign_Go/internal/logger"
	"github.com/osse101/CaseAssign_Go/internal/metrics"
	"github.com/osse101/CaseAssign_Go/internal/session"
)

// SessionSource lists live sessions without touching their idle timers
type SessionSource interface {
	Codes() []string
	Peek(code string) (*session.Session, bool)
	Len() int
}

// Persister queues a results snapshot of one session
type Persister interface {
	Persist(ctx context.Context, sess *session.Session)
}

// SessionCheckpointJob refreshes the active session gauge and queues a results
// snapshot for every live session.
type SessionCheckpointJob struct {
	sessions  SessionSource
	persister Persister
}

// NewSessionCheckpointJob creates the checkpoint job
func NewSessionCheckpointJob(sessions SessionSource, persister Persister) *SessionCheckpointJob {
	return &SessionCheckpointJob{sessions: sessions, persister: persister}
}

// Name implements worker.Job
func (j *SessionCheckpointJob) Name() string {
	return JobNameSessionCheckpoint
}

// Process implements worker.Job
func (j *SessionCheckpointJob) Process(ctx context.Context) error {
	metrics.SessionsActive.Set(float64(j.sessions.Len()))

	checkpointed := 0
	for _, code := range j.sessions.Codes() {
		sess, ok := j.sessions.Peek(code)
		if !ok {
			continue
		}
		j.persister.Persist(ctx, sess)
		checkpointed++
	}

	logger.FromContext(ctx).Debug(LogMsgCheckpointRun, "sessions", checkpointed)
	return nil
}
