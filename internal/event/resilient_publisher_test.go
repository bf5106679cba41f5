package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type MockBus struct {
	mock.Mock
	calls atomic.Int32
}

func (m *MockBus) Publish(ctx context.Context, event Event) error {
	m.calls.Add(1)
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType Type, handler Handler) {
	m.Called(eventType, handler)
}

func TestResilientPublisher_SuccessFirstTry(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

	p := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond})
	require.NoError(t, p.Publish(context.Background(), NewRoundAdvancedEvent("X", 1)))
	require.NoError(t, p.Shutdown(context.Background()))

	assert.Equal(t, int32(1), bus.calls.Load())
}

func TestResilientPublisher_RetriesThenSucceeds(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("down")).Once()
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

	p := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond})
	require.NoError(t, p.Publish(context.Background(), NewRoundAdvancedEvent("X", 1)))

	assert.Eventually(t, func() bool { return bus.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestResilientPublisher_ExhaustedGoesToDeadLetter(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dlw, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	defer dlw.Close()

	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("down"))

	p := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 2, RetryDelay: time.Millisecond, DeadLetter: dlw})
	require.NoError(t, p.Publish(context.Background(), NewCasesUploadedEvent("X", 4)))

	assert.Eventually(t, func() bool { return bus.calls.Load() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, p.Shutdown(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, CasesUploaded, entry.Event.Type)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, "down", entry.LastError)
}

func TestResilientPublisher_ShutdownCancelsPendingRetries(t *testing.T) {
	defer goleak.VerifyNone(t)

	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("down"))

	p := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 5, RetryDelay: time.Hour})
	require.NoError(t, p.Publish(context.Background(), NewRoundAdvancedEvent("X", 1)))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))
	assert.Equal(t, int32(1), bus.calls.Load())

	require.NoError(t, p.Publish(context.Background(), NewRoundAdvancedEvent("X", 2)))
	assert.Equal(t, int32(2), bus.calls.Load())
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(2*time.Second, 1))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(2*time.Second, 3))
}
