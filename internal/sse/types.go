package sse

// CaseSelectionPayload tells every judge of a session that a case changed hands
type CaseSelectionPayload struct {
	CaseID        int `json:"case_id"`
	ParticipantID int `json:"participant_id"`
	Points        int `json:"points,omitempty"`
}

// PoolPayload describes a change to the unassigned pool
type PoolPayload struct {
	AddedCaseIDs []int `json:"added_case_ids,omitempty"`
	CaseCount    int   `json:"case_count,omitempty"`
	Unassigned   int   `json:"unassigned,omitempty"`
}

// BarrierProgressPayload reports how many judges still have to submit bids.
// Amounts stay sealed until resolution.
type BarrierProgressPayload struct {
	ParticipantID int `json:"participant_id"`
	Pending       int `json:"pending"`
}

// AuctionResolvedPayload summarises an auction resolution
type AuctionResolvedPayload struct {
	Assignments  []AssignmentInfo `json:"assignments"`
	UnbidCaseIDs []int            `json:"unbid_case_ids"`
	Forced       bool             `json:"forced"`
}

// AssignmentInfo contains the public part of an assignment
type AssignmentInfo struct {
	CaseID        int    `json:"case_id"`
	ParticipantID int    `json:"participant_id"`
	WinningBid    string `json:"winning_bid"`
	Tied          bool   `json:"tied"`
}

// RoundPayload carries the new round number
type RoundPayload struct {
	Round int `json:"round"`
}
