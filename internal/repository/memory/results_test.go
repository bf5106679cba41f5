package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

func record(code string) *domain.SessionRecord {
	owner := 1
	return &domain.SessionRecord{
		Code:  code,
		Mode:  domain.ModeGreedy,
		Round: 2,
		Participants: []domain.Participant{
			{ID: 1, Username: "judge1", Role: domain.RoleJudge, AssignedCaseIDs: []int{3}, Payoff: decimal.NewFromInt(4)},
		},
		Cases: []domain.Case{
			{ID: 3, Points: 4, Status: domain.CaseStatusAssigned, OwnerID: &owner},
		},
		UpdatedAt: time.Now(),
	}
}

func TestResultsRepository_SaveAndGet(t *testing.T) {
	repo := NewResultsRepository()
	ctx := context.Background()
	in := record("ABC234")

	require.NoError(t, repo.SaveSession(ctx, in))

	// later mutation by the caller must not leak into the store
	in.Participants[0].AssignedCaseIDs[0] = 99
	*in.Cases[0].OwnerID = 42

	got, err := repo.GetSession(ctx, "ABC234")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got.Participants[0].AssignedCaseIDs)
	require.NotNil(t, got.Cases[0].OwnerID)
	assert.Equal(t, 1, *got.Cases[0].OwnerID)
}

func TestResultsRepository_Upsert(t *testing.T) {
	repo := NewResultsRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, record("S1")))
	next := record("S1")
	next.Round = 3
	require.NoError(t, repo.SaveSession(ctx, next))

	got, err := repo.GetSession(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Round)

	codes, err := repo.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1"}, codes)
}

func TestResultsRepository_NotFound(t *testing.T) {
	_, err := NewResultsRepository().GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}
