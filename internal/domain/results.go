package domain

import "time"

// SessionRecord is the persisted outcome of a session for display afterwards
type SessionRecord struct {
	Code         string        `json:"code"`
	Mode         Mode          `json:"mode"`
	Round        int           `json:"round"`
	AuctionState AuctionState  `json:"auction_state,omitempty"`
	Participants []Participant `json:"participants"`
	Cases        []Case        `json:"cases"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ParticipantByID returns the participant record with the given ID.
func (r *SessionRecord) ParticipantByID(id int) (Participant, bool) {
	for _, p := range r.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}
