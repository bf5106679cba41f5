package concurrency

import (
	"fmt"
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for key.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// Forget drops the lock for key. Callers must not hold it.
func (lm *LockManager) Forget(key string) {
	lm.locks.Delete(key)
}

// CaseKey names the lock guarding one case within a session.
func CaseKey(sessionCode string, caseID int) string {
	return fmt.Sprintf("case:%s:%d", sessionCode, caseID)
}

// ParticipantKey names the lock guarding one participant's claims within a session.
func ParticipantKey(sessionCode string, participantID int) string {
	return fmt.Sprintf("participant:%s:%d", sessionCode, participantID)
}

// ResultsKey names the lock serializing result writes for one session.
func ResultsKey(sessionCode string) string {
	return "results:" + sessionCode
}
