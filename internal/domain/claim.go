package domain

import "time"

// Claim is recorded when a greedy claim succeeds
type Claim struct {
	ParticipantID int       `json:"participant_id"`
	CaseID        int       `json:"case_id"`
	Points        int       `json:"points"`
	ClaimedAt     time.Time `json:"claimed_at"`
}

// ClaimOutcome is the typed result of a live-channel request
type ClaimOutcome string

const (
	OutcomeLoad            ClaimOutcome = "load"
	OutcomeCaseAssigned    ClaimOutcome = "case_assigned"
	OutcomeCaseSelected    ClaimOutcome = "case_selected"
	OutcomeCaseNotFound    ClaimOutcome = "case_not_found"
	OutcomeCaseUnavailable ClaimOutcome = "case_unavailable"
	OutcomeCaseUnselected  ClaimOutcome = "case_unselected"
	OutcomeExceedBudget    ClaimOutcome = "exceed_budget"
	OutcomeInvalidAction   ClaimOutcome = "invalid_action"
)

// JudgeSummary lists a judge's assigned cases at the end of a session
type JudgeSummary struct {
	ParticipantID int    `json:"participant_id"`
	Username      string `json:"username"`
	Cases         []Case `json:"cases"`
	TotalPoints   int    `json:"total_points"`
}
