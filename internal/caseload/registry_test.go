package caseload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

func newTestRegistry(t *testing.T, points ...int) *Registry {
	t.Helper()
	var cs []domain.Case
	for i, p := range points {
		cs = append(cs, domain.NewCase(i+1, p))
	}
	r, err := NewRegistry(cs)
	require.NoError(t, err)
	return r
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]domain.Case{domain.NewCase(1, 1), domain.NewCase(1, 2)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistry_CopiesAreDetached(t *testing.T) {
	r := newTestRegistry(t, 5, 8)
	c, ok := r.Get(1)
	require.True(t, ok)
	c.Assign(9)

	all := r.All()
	require.Len(t, all, 2)
	require.NotNil(t, all[0].OwnerID)
	*all[0].OwnerID = 42
	all[1].Points = 100

	stored, _ := r.Get(1)
	assert.Equal(t, 9, *stored.OwnerID)
	other, _ := r.Get(2)
	assert.Equal(t, 8, other.Points)
}

func TestRegistry_OwnedByIsDetached(t *testing.T) {
	r := newTestRegistry(t, 5, 8)
	for _, id := range []int{1, 2} {
		c, _ := r.Get(id)
		c.Assign(3)
	}

	owned := r.OwnedBy(3)
	require.Len(t, owned, 2)
	assert.NotSame(t, owned[0].OwnerID, owned[1].OwnerID)
	*owned[1].OwnerID = 4

	stored, _ := r.Get(2)
	assert.Equal(t, 3, *stored.OwnerID)
	assert.NotNil(t, r.Unassigned())
	assert.Empty(t, r.Unassigned())
}

func TestRegistry_Queries(t *testing.T) {
	r := newTestRegistry(t, 5, 8, 2)
	c1, _ := r.Get(1)
	c1.Assign(7)
	c3, _ := r.Get(3)
	c3.Assign(7)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 3, r.MaxID())
	assert.Equal(t, 1, r.UnassignedCount())
	assert.Equal(t, 7, r.PointsOwnedBy(7))
	assert.Len(t, r.OwnedBy(7), 2)

	unassigned := r.Unassigned()
	require.Len(t, unassigned, 1)
	assert.Equal(t, 2, unassigned[0].ID)
}

func TestRegistry_AgeUnassigned(t *testing.T) {
	r := newTestRegistry(t, 1, 1)
	c, _ := r.Get(1)
	c.Assign(3)

	assert.Equal(t, 1, r.AgeUnassigned(1))
	aged, _ := r.Get(2)
	assert.Equal(t, 2, aged.Points)
	assert.Equal(t, 1, c.Points)
}

func TestRegistry_ReplenishContinuesFromMaxID(t *testing.T) {
	r := newTestRegistry(t, 3, 3, 3)
	c, _ := r.Get(2)
	c.Assign(1)

	added := r.Replenish(5, func() int { return 4 })
	require.Len(t, added, 3)
	assert.Equal(t, []int{4, 5, 6}, []int{added[0].ID, added[1].ID, added[2].ID})
	assert.Equal(t, 5, r.UnassignedCount())

	assert.Empty(t, r.Replenish(5, func() int { return 4 }))
}

func TestRegistry_ReplaceLockedAfterAssignment(t *testing.T) {
	r := newTestRegistry(t, 1, 2)
	require.NoError(t, r.Replace([]domain.Case{domain.NewCase(10, 3)}))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 10, r.MaxID())

	c, _ := r.Get(10)
	c.Assign(1)
	assert.ErrorIs(t, r.Replace(nil), domain.ErrCasesLocked)
}
