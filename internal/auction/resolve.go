// Package auction implements the sealed-bid reverse auction: every judge
// submits bids once, and when the last judge arrives the lowest bid on each
// case wins, ties broken uniformly at random.
package auction

import (
	"math/rand/v2"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/osse101/CaseAssign_Go/internal/caseload"
	"github.com/osse101/CaseAssign_Go/internal/domain"
)

// Options controls how winners are paid
type Options struct {
	BidMax decimal.Decimal
	Policy domain.PayoffPolicy
}

// Payoff returns what the winner of a case earns for winningBid.
func (o Options) Payoff(winningBid decimal.Decimal) decimal.Decimal {
	if o.Policy == domain.PayoffBid {
		return winningBid
	}
	return o.BidMax.Sub(winningBid)
}

// Outcome is the result of one resolution pass
type Outcome struct {
	Assignments  []domain.Assignment
	UnbidCaseIDs []int
}

// Resolve assigns every unassigned case that received bids to its lowest
// bidder. Cases are visited in registry order, so winners' case lists grow in
// that order. Already assigned cases are left alone, which makes a second pass
// over the same ledger a no-op. Bids from unknown participants are ignored.
func Resolve(cases *caseload.Registry, bids []domain.Bid, participants map[int]*domain.Participant, opts Options, rng *rand.Rand) Outcome {
	byCase := make(map[int][]domain.Bid)
	for _, b := range bids {
		if _, ok := participants[b.ParticipantID]; !ok {
			continue
		}
		byCase[b.CaseID] = append(byCase[b.CaseID], b)
	}

	var out Outcome
	for _, snapshot := range cases.All() {
		c, _ := cases.Get(snapshot.ID)
		if c.IsAssigned() {
			continue
		}

		caseBids := byCase[c.ID]
		if len(caseBids) == 0 {
			out.UnbidCaseIDs = append(out.UnbidCaseIDs, c.ID)
			continue
		}

		lowest := lowestBids(caseBids)
		winner := lowest[0]
		if len(lowest) > 1 {
			winner = lowest[rng.IntN(len(lowest))]
		}

		tied := make([]int, len(lowest))
		for i, b := range lowest {
			tied[i] = b.ParticipantID
		}

		p := participants[winner.ParticipantID]
		delta := opts.Payoff(winner.Amount)
		c.Assign(p.ID)
		p.AddCase(c.ID)
		p.Payoff = p.Payoff.Add(delta)

		out.Assignments = append(out.Assignments, domain.Assignment{
			CaseID:        c.ID,
			ParticipantID: p.ID,
			WinningBid:    winner.Amount,
			TiedBidders:   tied,
			PayoffDelta:   delta,
		})
	}
	return out
}

// lowestBids returns the bids tied at the minimum amount ordered by participant ID.
func lowestBids(bids []domain.Bid) []domain.Bid {
	var lowest []domain.Bid
	for _, b := range bids {
		switch {
		case len(lowest) == 0 || b.Amount.LessThan(lowest[0].Amount):
			lowest = append(lowest[:0], b)
		case b.Amount.Equal(lowest[0].Amount):
			lowest = append(lowest, b)
		}
	}
	slices.SortFunc(lowest, func(a, b domain.Bid) int { return a.ParticipantID - b.ParticipantID })
	return lowest
}
