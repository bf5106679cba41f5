package concurrency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("a"), lm.GetLock("a"))
	assert.NotSame(t, lm.GetLock("a"), lm.GetLock("b"))
}

func TestWithLock_Serializes(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			return lm.WithLock(CaseKey("S1", 1), func() error {
				v := counter
				counter = v + 1
				return nil
			})
		})
	}
	assert.NoError(t, g.Wait())
	assert.Equal(t, 50, counter)
}

func TestForget_ReplacesMutex(t *testing.T) {
	lm := NewLockManager()
	first := lm.GetLock("k")
	lm.Forget("k")
	assert.NotSame(t, first, lm.GetLock("k"))
}

func TestKeys_AreScopedBySession(t *testing.T) {
	assert.NotEqual(t, CaseKey("A", 1), CaseKey("B", 1))
	assert.NotEqual(t, CaseKey("A", 1), ParticipantKey("A", 1))
}
