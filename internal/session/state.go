package session

import (
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/osse101/CaseAssign_Go/internal/caseload"
	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// State is the typed per-session state the assignment engines operate on.
// It is only reachable through Session.View and Session.Update.
type State struct {
	Cases        *caseload.Registry
	Participants map[int]*domain.Participant
	// Bids is keyed by participant ID, then case ID.
	Bids         map[int]map[int]domain.Bid
	Claims       []domain.Claim
	Assignments  []domain.Assignment
	AuctionState domain.AuctionState
	Round        int
	RNG          *rand.Rand
}

// Participant returns the participant with the given ID.
func (st *State) Participant(id int) (*domain.Participant, error) {
	p, ok := st.Participants[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return p, nil
}

// Judges returns judges ordered by ID.
func (st *State) Judges() []*domain.Participant {
	var judges []*domain.Participant
	for _, p := range st.Participants {
		if p.IsJudge() {
			judges = append(judges, p)
		}
	}
	sort.Slice(judges, func(i, j int) bool { return judges[i].ID < judges[j].ID })
	return judges
}

// BidsFor returns a participant's bids ordered by case ID.
func (st *State) BidsFor(participantID int) []domain.Bid {
	byCase := st.Bids[participantID]
	out := make([]domain.Bid, 0, len(byCase))
	for _, b := range byCase {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b domain.Bid) int { return a.CaseID - b.CaseID })
	return out
}

// AllBids flattens the ledger ordered by case then participant.
func (st *State) AllBids() []domain.Bid {
	var out []domain.Bid
	for _, byCase := range st.Bids {
		for _, b := range byCase {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b domain.Bid) int {
		if a.CaseID != b.CaseID {
			return a.CaseID - b.CaseID
		}
		return a.ParticipantID - b.ParticipantID
	})
	return out
}

// RandomPoints draws a point value in [lo, hi].
func (st *State) RandomPoints(lo, hi int) int {
	return lo + st.RNG.IntN(hi-lo+1)
}
