package domain

// CaseClaimedPayload is the payload for case.claimed events
type CaseClaimedPayload struct {
	SessionCode   string `json:"session_code"`
	ParticipantID int    `json:"participant_id"`
	CaseID        int    `json:"case_id"`
	Points        int    `json:"points"`
	Timestamp     int64  `json:"timestamp"`
}

// CaseReleasedPayload is the payload for case.released events
type CaseReleasedPayload struct {
	SessionCode   string `json:"session_code"`
	ParticipantID int    `json:"participant_id"`
	CaseID        int    `json:"case_id"`
	Timestamp     int64  `json:"timestamp"`
}

// PoolReplenishedPayload is the payload for pool.replenished events
type PoolReplenishedPayload struct {
	SessionCode string `json:"session_code"`
	AddedCases  []Case `json:"added_cases"`
	Unassigned  int    `json:"unassigned"`
	Timestamp   int64  `json:"timestamp"`
}

// CasesUploadedPayload is the payload for cases.uploaded events
type CasesUploadedPayload struct {
	SessionCode string `json:"session_code"`
	CaseCount   int    `json:"case_count"`
	Timestamp   int64  `json:"timestamp"`
}

// BidsSubmittedPayload is the payload for auction.bids_submitted events
type BidsSubmittedPayload struct {
	SessionCode   string `json:"session_code"`
	ParticipantID int    `json:"participant_id"`
	BidCount      int    `json:"bid_count"`
	Pending       int    `json:"pending"`
	Timestamp     int64  `json:"timestamp"`
}

// AuctionResolvedPayload is the payload for auction.resolved events
type AuctionResolvedPayload struct {
	SessionCode  string       `json:"session_code"`
	Assignments  []Assignment `json:"assignments"`
	UnbidCaseIDs []int        `json:"unbid_case_ids"`
	Forced       bool         `json:"forced"`
	Timestamp    int64        `json:"timestamp"`
}

// RoundAdvancedPayload is the payload for round.advanced events
type RoundAdvancedPayload struct {
	SessionCode string `json:"session_code"`
	Round       int    `json:"round"`
	Timestamp   int64  `json:"timestamp"`
}
