package barrier

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_RejectsNonPositiveSize(t *testing.T) {
	_, err := New(0, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestArrive_LastArrivalRunsCallbackOnce(t *testing.T) {
	var calls int32
	b, err := New(3, func(forced bool) {
		assert.False(t, forced)
		atomic.AddInt32(&calls, 1)
	})
	require.NoError(t, err)

	last, err := b.Arrive(1)
	require.NoError(t, err)
	assert.False(t, last)
	assert.Equal(t, 2, b.Pending())

	last, err = b.Arrive(2)
	require.NoError(t, err)
	assert.False(t, last)

	last, err = b.Arrive(3)
	require.NoError(t, err)
	assert.True(t, last)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 0, b.Pending())
	assert.Equal(t, []int{1, 2, 3}, b.Arrived())

	_, err = b.Arrive(4)
	assert.ErrorIs(t, err, ErrAlreadyReleased)
	assert.False(t, b.Release())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestArrive_DuplicateRejected(t *testing.T) {
	b, err := New(2, nil)
	require.NoError(t, err)

	_, err = b.Arrive(1)
	require.NoError(t, err)
	_, err = b.Arrive(1)
	assert.ErrorIs(t, err, ErrAlreadyArrived)
	assert.True(t, b.HasArrived(1))
	assert.Equal(t, 1, b.Pending())
}

func TestArrive_ConcurrentExactlyOneLast(t *testing.T) {
	const n = 32
	var calls int32
	b, err := New(n, func(bool) { atomic.AddInt32(&calls, 1) })
	require.NoError(t, err)

	var wg sync.WaitGroup
	lastCount := int32(0)
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			last, err := b.Arrive(id)
			assert.NoError(t, err)
			if last {
				atomic.AddInt32(&lastCount, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), lastCount)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWait_UnblocksAfterCallback(t *testing.T) {
	var resolved atomic.Bool
	b, err := New(2, func(bool) { resolved.Store(true) })
	require.NoError(t, err)

	results := make(chan bool, 1)
	go func() {
		_ = b.Wait(context.Background())
		results <- resolved.Load()
	}()

	_, _ = b.Arrive(1)
	_, _ = b.Arrive(2)

	select {
	case sawResolved := <-results:
		assert.True(t, sawResolved, "waiters must observe callback effects")
	case <-time.After(time.Second):
		t.Fatal("waiter did not unblock")
	}
}

func TestWait_ContextDeadline(t *testing.T) {
	b, err := New(2, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, b.Wait(ctx), context.DeadlineExceeded)
}

func TestRelease_ForcesCallback(t *testing.T) {
	var forcedSeen atomic.Bool
	b, err := New(3, func(forced bool) { forcedSeen.Store(forced) })
	require.NoError(t, err)

	_, _ = b.Arrive(1)
	assert.True(t, b.Release())
	assert.True(t, forcedSeen.Load())
	assert.True(t, b.Forced())

	select {
	case <-b.Done():
	default:
		t.Fatal("Done should be closed after Release")
	}
}
