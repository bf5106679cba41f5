// Package memory keeps session results in process memory.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/tiendc/go-deepcopy"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// ResultsRepository implements repository.Results in memory
type ResultsRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.SessionRecord
}

// NewResultsRepository creates an empty in-memory results store
func NewResultsRepository() *ResultsRepository {
	return &ResultsRepository{records: make(map[string]*domain.SessionRecord)}
}

// SaveSession stores a detached copy of record
func (r *ResultsRepository) SaveSession(_ context.Context, record *domain.SessionRecord) error {
	stored, err := clone(record)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.Code] = stored
	return nil
}

// GetSession returns a copy of the stored record
func (r *ResultsRepository) GetSession(_ context.Context, code string) (*domain.SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[code]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return clone(record)
}

// ListSessions returns stored session codes in sorted order
func (r *ResultsRepository) ListSessions(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.records))
	for code := range r.records {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes, nil
}

func clone(record *domain.SessionRecord) (*domain.SessionRecord, error) {
	out := *record

	out.Cases = nil
	if err := deepcopy.Copy(&out.Cases, record.Cases); err != nil {
		return nil, fmt.Errorf("clone cases of %s: %w", record.Code, err)
	}

	// decimal.Decimal is immutable, so a shallow copy of each participant
	// is enough once the case list is cloned.
	out.Participants = make([]domain.Participant, len(record.Participants))
	for i, p := range record.Participants {
		p.AssignedCaseIDs = slices.Clone(p.AssignedCaseIDs)
		out.Participants[i] = p
	}
	return &out, nil
}
