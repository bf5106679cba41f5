package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Role is derived at login and fixed for the rest of the session
type Role string

const (
	RoleAdmin Role = "admin"
	RoleJudge Role = "judge"
)

// Participant is a judge or administrator inside one experiment session
type Participant struct {
	ID              int             `json:"id"`
	Username        string          `json:"username"`
	Role            Role            `json:"role"`
	Budget          int             `json:"budget"`
	AssignedCaseIDs []int           `json:"assigned_case_ids"`
	Payoff          decimal.Decimal `json:"payoff"`
}

// IsJudge reports whether the participant takes part in assignment.
func (p *Participant) IsJudge() bool {
	return p.Role == RoleJudge
}

// HasCase reports whether caseID is in the assigned list.
func (p *Participant) HasCase(caseID int) bool {
	return slices.Contains(p.AssignedCaseIDs, caseID)
}

// AddCase appends caseID, preserving assignment order.
func (p *Participant) AddCase(caseID int) {
	p.AssignedCaseIDs = append(p.AssignedCaseIDs, caseID)
}

// RemoveCase drops caseID from the assigned list if present.
func (p *Participant) RemoveCase(caseID int) bool {
	idx := slices.Index(p.AssignedCaseIDs, caseID)
	if idx < 0 {
		return false
	}
	p.AssignedCaseIDs = slices.Delete(p.AssignedCaseIDs, idx, idx+1)
	return true
}
