package caseload

import (
	"fmt"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// Registry holds one session's cases in load order. It is not safe for
// concurrent use; the owning session serializes access.
type Registry struct {
	cases map[int]*domain.Case
	order []int
	maxID int
}

// NewRegistry builds a registry, rejecting duplicate IDs.
func NewRegistry(initial []domain.Case) (*Registry, error) {
	r := &Registry{cases: make(map[int]*domain.Case, len(initial))}
	for _, c := range initial {
		if err := r.Add(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends a case to the registry.
func (r *Registry) Add(c domain.Case) error {
	if _, exists := r.cases[c.ID]; exists {
		return fmt.Errorf("%w: duplicate case id %d", domain.ErrInvalidInput, c.ID)
	}
	if c.Status == "" {
		c.Status = domain.CaseStatusUnassigned
	}
	stored := c
	r.cases[c.ID] = &stored
	r.order = append(r.order, c.ID)
	if c.ID > r.maxID {
		r.maxID = c.ID
	}
	return nil
}

// Replace swaps the whole table. Rejected once any case has an owner.
func (r *Registry) Replace(next []domain.Case) error {
	for _, id := range r.order {
		if r.cases[id].IsAssigned() {
			return domain.ErrCasesLocked
		}
	}

	fresh, err := NewRegistry(next)
	if err != nil {
		return err
	}
	*r = *fresh
	return nil
}

// Get returns the stored case for in-place mutation.
func (r *Registry) Get(id int) (*domain.Case, bool) {
	c, ok := r.cases[id]
	return c, ok
}

// Len returns the number of cases.
func (r *Registry) Len() int {
	return len(r.order)
}

// MaxID returns the highest case ID ever added.
func (r *Registry) MaxID() int {
	return r.maxID
}

// All returns a detached copy of every case in load order.
func (r *Registry) All() []domain.Case {
	return r.collect(func(*domain.Case) bool { return true })
}

// Unassigned returns a detached copy of every claimable case.
func (r *Registry) Unassigned() []domain.Case {
	return r.collect(func(c *domain.Case) bool { return !c.IsAssigned() })
}

// UnassignedCount returns how many cases are still claimable.
func (r *Registry) UnassignedCount() int {
	n := 0
	for _, id := range r.order {
		if !r.cases[id].IsAssigned() {
			n++
		}
	}
	return n
}

// OwnedBy returns a detached copy of the cases owned by participantID.
func (r *Registry) OwnedBy(participantID int) []domain.Case {
	return r.collect(func(c *domain.Case) bool { return c.IsOwnedBy(participantID) })
}

// PointsOwnedBy sums the points of the cases owned by participantID.
func (r *Registry) PointsOwnedBy(participantID int) int {
	total := 0
	for _, id := range r.order {
		if c := r.cases[id]; c.IsOwnedBy(participantID) {
			total += c.Points
		}
	}
	return total
}

// AgeUnassigned adds delta points to every unassigned case and returns how many changed.
func (r *Registry) AgeUnassigned(delta int) int {
	n := 0
	for _, id := range r.order {
		if c := r.cases[id]; !c.IsAssigned() {
			c.Points += delta
			n++
		}
	}
	return n
}

// Replenish synthesizes cases until at least minimum are unassigned. New IDs
// continue from MaxID and points come from pointsFn.
func (r *Registry) Replenish(minimum int, pointsFn func() int) []domain.Case {
	var added []domain.Case
	for missing := minimum - r.UnassignedCount(); missing > 0; missing-- {
		c := domain.NewCase(r.maxID+1, pointsFn())
		_ = r.Add(c)
		added = append(added, c)
	}
	return added
}

// collect returns copies of the kept cases. OwnerID is re-pointed so callers
// cannot reach stored state.
func (r *Registry) collect(keep func(*domain.Case) bool) []domain.Case {
	out := []domain.Case{}
	for _, id := range r.order {
		c := r.cases[id]
		if !keep(c) {
			continue
		}
		cp := *c
		if c.OwnerID != nil {
			owner := *c.OwnerID
			cp.OwnerID = &owner
		}
		out = append(out, cp)
	}
	return out
}
