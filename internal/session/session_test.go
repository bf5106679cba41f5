package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseAssign_Go/internal/domain"
)

func greedySettings() Settings {
	s := DefaultSettings(domain.ModeGreedy)
	s.Seed = 7
	s.Budget = 10
	return s
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"bad mode", func(s *Settings) { s.Mode = "lottery" }},
		{"no judges", func(s *Settings) { s.Judges = 0 }},
		{"inverted bid range", func(s *Settings) { s.BidMin = decimal.NewFromInt(5); s.BidMax = decimal.NewFromInt(1) }},
		{"negative bid min", func(s *Settings) { s.BidMin = decimal.NewFromInt(-1) }},
		{"sub-cent bid max", func(s *Settings) { s.BidMax = decimal.RequireFromString("9.999") }},
		{"bad payoff", func(s *Settings) { s.PayoffPolicy = "double" }},
		{"negative budget", func(s *Settings) { s.Budget = -1 }},
		{"inverted points", func(s *Settings) { s.PointsMin = 5; s.PointsMax = 1 }},
		{"bad aging", func(s *Settings) { s.Aging = "daily" }},
		{"bad ingest", func(s *Settings) { s.IngestPolicy = "loose" }},
	}

	assert.NoError(t, DefaultSettings(domain.ModeAuction).Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings(domain.ModeGreedy)
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), domain.ErrInvalidInput)
		})
	}
}

func TestSettings_BudgetEnabled(t *testing.T) {
	s := DefaultSettings(domain.ModeGreedy)
	s.Budget = 0
	assert.False(t, s.BudgetEnabled())
	s.Budget = 1
	assert.True(t, s.BudgetEnabled())
}

func TestManager_CreateAndGet(t *testing.T) {
	m := NewManager(10, time.Hour)

	s, err := m.Create(context.Background(), greedySettings())
	require.NoError(t, err)
	assert.Len(t, s.Code, CodeLength)
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(s.Code)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get("NOPE00")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_CreateRejectsInvalidSettings(t *testing.T) {
	m := NewManager(10, time.Hour)
	bad := greedySettings()
	bad.Judges = 0

	_, err := m.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, m.Len())
}

func TestManager_RemoveRunsEvictHandlers(t *testing.T) {
	m := NewManager(10, time.Hour)
	var evicted []string
	m.OnEvict(func(s *Session) { evicted = append(evicted, s.Code) })

	s, err := m.Create(context.Background(), greedySettings())
	require.NoError(t, err)

	assert.True(t, m.Remove(s.Code))
	assert.Equal(t, []string{s.Code}, evicted)
}

func TestManager_CreateRunsCreateHandlers(t *testing.T) {
	m := NewManager(10, time.Hour)
	var created []string
	m.OnCreate(func(_ context.Context, s *Session) { created = append(created, s.Code) })

	s, err := m.Create(context.Background(), greedySettings())
	require.NoError(t, err)
	assert.Equal(t, []string{s.Code}, created)
}

func TestSnapshot_Record(t *testing.T) {
	m := NewManager(10, time.Hour)
	s, err := m.Create(context.Background(), greedySettings())
	require.NoError(t, err)
	_, err = s.Login("judge1", "judge")
	require.NoError(t, err)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := s.Snapshot().Record(at)

	assert.Equal(t, s.Code, rec.Code)
	assert.Equal(t, s.Settings.Mode, rec.Mode)
	assert.Equal(t, at, rec.UpdatedAt)
	require.Len(t, rec.Participants, 1)
	assert.Equal(t, "judge1", rec.Participants[0].Username)
	assert.Len(t, rec.Cases, s.Settings.InitialCases)
}

func TestNewSession_SeedsCasesPerMode(t *testing.T) {
	m := NewManager(10, time.Hour)

	greedy, err := m.Create(context.Background(), greedySettings())
	require.NoError(t, err)
	greedy.View(func(st *State) {
		require.Equal(t, DefaultInitialCases, st.Cases.Len())
		for _, c := range st.Cases.All() {
			assert.GreaterOrEqual(t, c.Points, DefaultPointsMin)
			assert.LessOrEqual(t, c.Points, DefaultPointsMax)
		}
	})
	assert.Nil(t, greedy.Barrier())

	auction, err := m.Create(context.Background(), DefaultSettings(domain.ModeAuction))
	require.NoError(t, err)
	require.NotNil(t, auction.Barrier())
	assert.Equal(t, DefaultJudges, auction.Barrier().Size())
	auction.View(func(st *State) {
		assert.Equal(t, domain.AuctionStateCollecting, st.AuctionState)
		c, ok := st.Cases.Get(1)
		require.True(t, ok)
		assert.Equal(t, "Details for Case 1", c.Description)
	})
}

func TestNewSession_SeedIsReproducible(t *testing.T) {
	m := NewManager(10, time.Hour)

	a, err := m.Create(context.Background(), greedySettings())
	require.NoError(t, err)
	b, err := m.Create(context.Background(), greedySettings())
	require.NoError(t, err)

	assert.Equal(t, a.Snapshot().Cases, b.Snapshot().Cases)
}

func TestLogin(t *testing.T) {
	m := NewManager(10, time.Hour)
	settings := greedySettings()
	settings.Judges = 2
	s, err := m.Create(context.Background(), settings)
	require.NoError(t, err)

	admin, err := s.Login("admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Participant.Role)
	assert.Equal(t, 0, admin.Participant.Budget)

	j1, err := s.Login("judge1", "judge")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleJudge, j1.Participant.Role)
	assert.Equal(t, 10, j1.Participant.Budget)
	assert.NotEmpty(t, j1.Token)

	again, err := s.Login("judge1", "judge")
	require.NoError(t, err)
	assert.Equal(t, j1.Token, again.Token)
	assert.Equal(t, j1.Participant.ID, again.Participant.ID)

	_, err = s.Login("judge2", "judge")
	require.NoError(t, err)
	_, err = s.Login("judge3", "judge")
	assert.ErrorIs(t, err, domain.ErrSessionFull)

	_, err = s.Login("judge4", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	p, err := s.ParticipantByToken(j1.Token)
	require.NoError(t, err)
	assert.Equal(t, "judge1", p.Username)

	_, err = s.ParticipantByToken("missing")
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestLogin_ConcurrentJudgesRespectCapacity(t *testing.T) {
	m := NewManager(10, time.Hour)
	settings := greedySettings()
	settings.Judges = 5
	s, err := m.Create(context.Background(), settings)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.Login("judge"+string(rune('a'+n)), "judge")
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	ok, full := 0, 0
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrSessionFull):
			full++
		}
	}
	assert.Equal(t, 5, ok)
	assert.Equal(t, 15, full)
}

func TestSnapshot_IsDetached(t *testing.T) {
	m := NewManager(10, time.Hour)
	s, err := m.Create(context.Background(), greedySettings())
	require.NoError(t, err)
	_, err = s.Login("judge1", "judge")
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Participants, 1)
	snap.Participants[0].AssignedCaseIDs = append(snap.Participants[0].AssignedCaseIDs, 99)
	snap.Cases[0].Points = 1000

	fresh := s.Snapshot()
	assert.Empty(t, fresh.Participants[0].AssignedCaseIDs)
	assert.NotEqual(t, 1000, fresh.Cases[0].Points)
}
