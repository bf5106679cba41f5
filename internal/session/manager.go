package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/osse101/CaseAssign_Go/internal/domain"
	"github.com/osse101/CaseAssign_Go/internal/logger"
)

// ReleaseHandler runs when an auction session's barrier opens.
type ReleaseHandler func(s *Session, forced bool)

// EvictHandler runs when a session leaves the store.
type EvictHandler func(s *Session)

// CreateHandler runs after a session has been added to the store.
type CreateHandler func(ctx context.Context, s *Session)

// Manager owns live sessions, keyed by join code, with idle expiry.
type Manager struct {
	store *expirable.LRU[string, *Session]

	mu        sync.RWMutex
	onRelease ReleaseHandler
	onEvict   []EvictHandler
	onCreate  []CreateHandler
}

// NewManager creates a session store holding up to capacity sessions that
// expire after ttl without access.
func NewManager(capacity int, ttl time.Duration) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}

	m := &Manager{}
	m.store = expirable.NewLRU[string, *Session](capacity, m.evicted, ttl)
	return m
}

// HandleAuctionRelease installs the callback run when an auction barrier opens.
func (m *Manager) HandleAuctionRelease(fn ReleaseHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onRelease = fn
}

// OnEvict registers a callback for sessions leaving the store.
func (m *Manager) OnEvict(fn EvictHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onEvict = append(m.onEvict, fn)
}

// OnCreate registers a callback for newly created sessions.
func (m *Manager) OnCreate(fn CreateHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onCreate = append(m.onCreate, fn)
}

// Create starts a new session under settings.
func (m *Manager) Create(ctx context.Context, settings Settings) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.Seed == 0 {
		settings.Seed = rand.Uint64()
	}

	code, err := m.allocateCode()
	if err != nil {
		return nil, err
	}

	s, err := newSession(uuid.New(), code, settings, m.release)
	if err != nil {
		return nil, err
	}
	m.store.Add(code, s)

	logger.FromContext(ctx).Info(LogMsgSessionCreated,
		"session", code,
		"mode", settings.Mode,
		"judges", settings.Judges,
		"seed", settings.Seed)

	m.mu.RLock()
	handlers := append([]CreateHandler(nil), m.onCreate...)
	m.mu.RUnlock()
	for _, fn := range handlers {
		fn(ctx, s)
	}
	return s, nil
}

// Get returns the session for code and refreshes its idle timer.
func (m *Manager) Get(code string) (*Session, error) {
	s, ok := m.store.Get(code)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	m.store.Add(code, s)
	return s, nil
}

// Peek returns the session for code without refreshing its idle timer.
func (m *Manager) Peek(code string) (*Session, bool) {
	return m.store.Peek(code)
}

// Remove drops a session from the store.
func (m *Manager) Remove(code string) bool {
	return m.store.Remove(code)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.store.Len()
}

// Codes returns the codes of live sessions.
func (m *Manager) Codes() []string {
	return m.store.Keys()
}

func (m *Manager) allocateCode() (string, error) {
	for attempt := 0; attempt < CodeMaxAttempts; attempt++ {
		code, err := gonanoid.Generate(CodeAlphabet, CodeLength)
		if err != nil {
			return "", fmt.Errorf("%s: %w", ErrContextGenerateCode, err)
		}
		if !m.store.Contains(code) {
			return code, nil
		}
	}
	return "", errors.New(ErrMsgCodeExhausted)
}

func (m *Manager) release(s *Session, forced bool) {
	m.mu.RLock()
	fn := m.onRelease
	m.mu.RUnlock()
	if fn != nil {
		fn(s, forced)
	}
}

func (m *Manager) evicted(code string, s *Session) {
	m.mu.RLock()
	handlers := append([]EvictHandler(nil), m.onEvict...)
	m.mu.RUnlock()

	logger.FromContext(context.Background()).Info(LogMsgSessionEvicted, "session", code)
	for _, fn := range handlers {
		fn(s)
	}
}
