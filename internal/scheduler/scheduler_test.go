package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/osse101/CaseAssign_Go/internal/metrics"
	"github.com/osse101/CaseAssign_Go/internal/session"
	"github.com/osse101/CaseAssign_Go/internal/worker"
)

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Process(context.Context) error {
	j.runs.Add(1)
	return nil
}

func TestScheduler_RunsJobRepeatedly(t *testing.T) {
	defer goleak.VerifyNone(t)

	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &countingJob{}
	sched.Schedule(5*time.Millisecond, job)

	require.Eventually(t, func() bool { return job.runs.Load() >= 2 }, time.Second, time.Millisecond)

	sched.Stop()
	sched.Stop()
}

type fakeSessions struct {
	sessions map[string]*session.Session
}

func (f *fakeSessions) Codes() []string {
	codes := make([]string, 0, len(f.sessions)+1)
	for code := range f.sessions {
		codes = append(codes, code)
	}
	// a code that expired between listing and lookup
	return append(codes, "GONE00")
}

func (f *fakeSessions) Peek(code string) (*session.Session, bool) {
	s, ok := f.sessions[code]
	return s, ok
}

func (f *fakeSessions) Len() int { return len(f.sessions) }

type recordingPersister struct {
	mu    sync.Mutex
	codes []string
}

func (p *recordingPersister) Persist(_ context.Context, sess *session.Session) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.codes = append(p.codes, sess.Code)
}

func TestSessionCheckpointJob(t *testing.T) {
	source := &fakeSessions{sessions: map[string]*session.Session{
		"AAAAAA": {Code: "AAAAAA"},
		"BBBBBB": {Code: "BBBBBB"},
	}}
	persister := &recordingPersister{}
	job := NewSessionCheckpointJob(source, persister)

	require.NoError(t, job.Process(context.Background()))

	assert.Equal(t, JobNameSessionCheckpoint, job.Name())
	assert.ElementsMatch(t, []string{"AAAAAA", "BBBBBB"}, persister.codes)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.SessionsActive))
}
