// Package barrier implements a collection point that runs a callback once
// every expected participant has arrived.
package barrier

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotExpected     = errors.New(ErrMsgNotExpected)
	ErrAlreadyArrived  = errors.New(ErrMsgAlreadyArrived)
	ErrAlreadyReleased = errors.New(ErrMsgAlreadyReleased)
	ErrInvalidSize     = errors.New(ErrMsgInvalidSize)
)

// ReleaseFunc runs exactly once when the barrier opens. forced is true when
// the barrier was opened by Release rather than by the last arrival.
type ReleaseFunc func(forced bool)

// Barrier waits for a fixed number of distinct participants.
type Barrier struct {
	mu       sync.Mutex
	size     int
	arrived  map[int]struct{}
	order    []int
	released bool
	forced   bool

	once      sync.Once
	onRelease ReleaseFunc
	done      chan struct{}
}

// New creates a barrier expecting size distinct arrivals.
func New(size int, onRelease ReleaseFunc) (*Barrier, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &Barrier{
		size:      size,
		arrived:   make(map[int]struct{}, size),
		onRelease: onRelease,
		done:      make(chan struct{}),
	}, nil
}

// Arrive records participantID. The last arrival runs the release callback
// before returning, so last is true for exactly one caller.
func (b *Barrier) Arrive(participantID int) (last bool, err error) {
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		return false, ErrAlreadyReleased
	}
	if _, ok := b.arrived[participantID]; ok {
		b.mu.Unlock()
		return false, ErrAlreadyArrived
	}
	if len(b.arrived) >= b.size {
		b.mu.Unlock()
		return false, ErrNotExpected
	}
	b.arrived[participantID] = struct{}{}
	b.order = append(b.order, participantID)
	last = len(b.arrived) == b.size
	if last {
		b.released = true
	}
	b.mu.Unlock()

	if last {
		b.fire(false)
	}
	return last, nil
}

// Release opens the barrier without waiting for the remaining arrivals.
// It returns false if the barrier was already open.
func (b *Barrier) Release() bool {
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		return false
	}
	b.released = true
	b.forced = true
	b.mu.Unlock()

	b.fire(true)
	return true
}

func (b *Barrier) fire(forced bool) {
	b.once.Do(func() {
		if b.onRelease != nil {
			b.onRelease(forced)
		}
		close(b.done)
	})
}

// Done is closed after the release callback has returned.
func (b *Barrier) Done() <-chan struct{} {
	return b.done
}

// Wait blocks until the barrier opens or ctx ends.
func (b *Barrier) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HasArrived reports whether participantID has arrived.
func (b *Barrier) HasArrived(participantID int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.arrived[participantID]
	return ok
}

// Arrived returns arrival order so far.
func (b *Barrier) Arrived() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]int, len(b.order))
	copy(out, b.order)
	return out
}

// Pending returns how many arrivals are still missing.
func (b *Barrier) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return 0
	}
	return b.size - len(b.arrived)
}

// Size returns the number of expected arrivals.
func (b *Barrier) Size() int {
	return b.size
}

// Forced reports whether the barrier was opened by Release.
func (b *Barrier) Forced() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.forced
}
