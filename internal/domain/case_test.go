package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCase_AssignAndUnassignKeepStatusAndOwnerInAgreement(t *testing.T) {
	c := NewCase(7, 4)
	assert.False(t, c.IsAssigned())
	assert.Nil(t, c.OwnerID)

	c.Assign(3)
	assert.True(t, c.IsAssigned())
	require.NotNil(t, c.OwnerID)
	assert.Equal(t, 3, *c.OwnerID)
	assert.True(t, c.IsOwnedBy(3))
	assert.False(t, c.IsOwnedBy(4))

	c.Unassign()
	assert.False(t, c.IsAssigned())
	assert.Nil(t, c.OwnerID)
	assert.False(t, c.IsOwnedBy(3))
}

func TestParticipant_CaseList(t *testing.T) {
	p := &Participant{ID: 1, Role: RoleJudge}

	p.AddCase(5)
	p.AddCase(2)
	p.AddCase(9)
	assert.Equal(t, []int{5, 2, 9}, p.AssignedCaseIDs)
	assert.True(t, p.HasCase(2))

	assert.True(t, p.RemoveCase(2))
	assert.Equal(t, []int{5, 9}, p.AssignedCaseIDs)
	assert.False(t, p.RemoveCase(2))
	assert.False(t, p.HasCase(2))
}

func TestBudgetExceededError(t *testing.T) {
	var err error = &BudgetExceededError{CaseID: 2, Overflow: 3}

	assert.True(t, errors.Is(err, ErrBudgetExceeded))
	assert.Contains(t, err.Error(), ErrMsgBudgetExceeded)

	var budgetErr *BudgetExceededError
	require.True(t, errors.As(err, &budgetErr))
	assert.Equal(t, 3, budgetErr.Overflow)
}

func TestParsePolicies(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) error
		input   string
		wantErr bool
	}{
		{"mode auction", func(s string) error { _, err := ParseMode(s); return err }, "auction", false},
		{"mode bogus", func(s string) error { _, err := ParseMode(s); return err }, "lottery", true},
		{"payoff spread", func(s string) error { _, err := ParsePayoffPolicy(s); return err }, "spread", false},
		{"payoff bogus", func(s string) error { _, err := ParsePayoffPolicy(s); return err }, "double", true},
		{"aging poll", func(s string) error { _, err := ParseAgingCadence(s); return err }, "poll", false},
		{"aging bogus", func(s string) error { _, err := ParseAgingCadence(s); return err }, "daily", true},
		{"ingest lenient", func(s string) error { _, err := ParseIngestPolicy(s); return err }, "lenient", false},
		{"ingest bogus", func(s string) error { _, err := ParseIngestPolicy(s); return err }, "loose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
