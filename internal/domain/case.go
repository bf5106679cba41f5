package domain

// CaseStatus represents the assignment status of a case
type CaseStatus string

const (
	CaseStatusUnassigned CaseStatus = "unassigned"
	CaseStatusAssigned   CaseStatus = "assigned"
)

// Case is a unit of work with a point value, owned by at most one participant
type Case struct {
	ID          int        `json:"case_id"`
	Type        string     `json:"case_type,omitempty"`
	Region      string     `json:"region,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Points      int        `json:"points"`
	DateFiled   string     `json:"date_filed,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      CaseStatus `json:"status"`
	OwnerID     *int       `json:"owner_id,omitempty"`
}

// IsAssigned reports whether the case currently has an owner.
func (c *Case) IsAssigned() bool {
	return c.Status == CaseStatusAssigned
}

// IsOwnedBy reports whether participantID owns the case.
func (c *Case) IsOwnedBy(participantID int) bool {
	return c.OwnerID != nil && *c.OwnerID == participantID
}

// Assign sets the owner and flips the status together.
func (c *Case) Assign(participantID int) {
	owner := participantID
	c.OwnerID = &owner
	c.Status = CaseStatusAssigned
}

// Unassign clears the owner and returns the case to the pool.
func (c *Case) Unassign() {
	c.OwnerID = nil
	c.Status = CaseStatusUnassigned
}

// NewCase returns an unassigned case
func NewCase(id, points int) Case {
	return Case{ID: id, Points: points, Status: CaseStatusUnassigned}
}
