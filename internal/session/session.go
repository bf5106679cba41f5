package session

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/CaseAssign_Go/internal/auth"
	"github.com/osse101/CaseAssign_Go/internal/barrier"
	"github.com/osse101/CaseAssign_Go/internal/caseload"
	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// Session is one running experiment. All state mutation goes through Update.
type Session struct {
	ID        uuid.UUID
	Code      string
	Settings  Settings
	CreatedAt time.Time

	mu         sync.RWMutex
	state      State
	byUsername map[string]int
	tokens     map[string]int
	nextID     int
	barrier    *barrier.Barrier
}

// Login is returned to a participant after a successful login
type Login struct {
	Participant domain.Participant `json:"participant"`
	Token       string             `json:"token"`
}

// Snapshot is a detached, read-only view of a session
type Snapshot struct {
	Code         string               `json:"code"`
	Mode         domain.Mode          `json:"mode"`
	Round        int                  `json:"round"`
	AuctionState domain.AuctionState  `json:"auction_state,omitempty"`
	Cases        []domain.Case        `json:"cases"`
	Participants []domain.Participant `json:"participants"`
	Assignments  []domain.Assignment  `json:"assignments,omitempty"`
	Claims       []domain.Claim       `json:"claims,omitempty"`
}

func newSession(id uuid.UUID, code string, settings Settings, onRelease func(*Session, bool)) (*Session, error) {
	s := &Session{
		ID:         id,
		Code:       code,
		Settings:   settings,
		CreatedAt:  time.Now(),
		byUsername: make(map[string]int),
		tokens:     make(map[string]int),
		nextID:     1,
	}

	registry, err := caseload.NewRegistry(nil)
	if err != nil {
		return nil, err
	}
	s.state = State{
		Cases:        registry,
		Participants: make(map[int]*domain.Participant),
		Bids:         make(map[int]map[int]domain.Bid),
		Round:        1,
		RNG:          rand.New(rand.NewPCG(settings.Seed, settings.Seed^0x9e3779b97f4a7c15)),
	}
	if settings.Mode == domain.ModeAuction {
		s.state.AuctionState = domain.AuctionStateCollecting
	}

	if err := s.seedCases(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInitialCases, err)
	}

	if settings.Mode == domain.ModeAuction {
		b, err := barrier.New(settings.Judges, func(forced bool) {
			if onRelease != nil {
				onRelease(s, forced)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextBarrier, err)
		}
		s.barrier = b
	}

	return s, nil
}

func (s *Session) seedCases() error {
	for i := 1; i <= s.Settings.InitialCases; i++ {
		c := domain.NewCase(i, 0)
		if s.Settings.Mode == domain.ModeAuction {
			c.Description = fmt.Sprintf("Details for Case %d", i)
		} else {
			c.Points = s.state.RandomPoints(s.Settings.PointsMin, s.Settings.PointsMax)
		}
		if err := s.state.Cases.Add(c); err != nil {
			return err
		}
	}
	return nil
}

// View runs fn under the read lock. fn must not mutate st or use st.RNG.
func (s *Session) View(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Update runs fn under the write lock.
func (s *Session) Update(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

// Barrier returns the auction barrier, or nil for greedy sessions.
func (s *Session) Barrier() *barrier.Barrier {
	return s.barrier
}

// Login resolves the role for the credentials and returns the participant,
// creating it on first login. Logging in again returns the same token.
func (s *Session) Login(username, password string) (Login, error) {
	role, err := auth.ResolveRole(username, password)
	if err != nil {
		return Login{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byUsername[username]; ok {
		p := s.state.Participants[id]
		return Login{Participant: cloneParticipant(p), Token: s.tokenFor(id)}, nil
	}

	if role == domain.RoleJudge && len(s.state.Judges()) >= s.Settings.Judges {
		return Login{}, domain.ErrSessionFull
	}

	p := &domain.Participant{
		ID:              s.nextID,
		Username:        username,
		Role:            role,
		AssignedCaseIDs: []int{},
		Payoff:          decimal.Zero,
	}
	if role == domain.RoleJudge {
		p.Budget = s.Settings.Budget
	}
	s.nextID++

	token := uuid.NewString()
	s.state.Participants[p.ID] = p
	s.byUsername[username] = p.ID
	s.tokens[token] = p.ID

	return Login{Participant: cloneParticipant(p), Token: token}, nil
}

func (s *Session) tokenFor(participantID int) string {
	for token, id := range s.tokens {
		if id == participantID {
			return token
		}
	}
	return ""
}

// ParticipantByToken returns a copy of the participant holding token.
func (s *Session) ParticipantByToken(token string) (domain.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.tokens[token]
	if !ok {
		return domain.Participant{}, domain.ErrParticipantNotFound
	}
	return cloneParticipant(s.state.Participants[id]), nil
}

// Snapshot returns a detached copy of the session for display.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Code:         s.Code,
		Mode:         s.Settings.Mode,
		Round:        s.state.Round,
		AuctionState: s.state.AuctionState,
		Cases:        s.state.Cases.All(),
		Assignments:  slices.Clone(s.state.Assignments),
		Claims:       slices.Clone(s.state.Claims),
	}
	ids := make([]int, 0, len(s.state.Participants))
	for id := range s.state.Participants {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		snap.Participants = append(snap.Participants, cloneParticipant(s.state.Participants[id]))
	}
	return snap
}

// Record converts the snapshot into the persisted results shape.
func (snap Snapshot) Record(at time.Time) *domain.SessionRecord {
	return &domain.SessionRecord{
		Code:         snap.Code,
		Mode:         snap.Mode,
		Round:        snap.Round,
		AuctionState: snap.AuctionState,
		Participants: snap.Participants,
		Cases:        snap.Cases,
		UpdatedAt:    at,
	}
}

func cloneParticipant(p *domain.Participant) domain.Participant {
	out := *p
	out.AssignedCaseIDs = slices.Clone(p.AssignedCaseIDs)
	if out.AssignedCaseIDs == nil {
		out.AssignedCaseIDs = []int{}
	}
	return out
}
