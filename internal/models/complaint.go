package models

import "time"

// Complaint lifecycle values observed from the backend. Transitions happen
// server-side; the portal renders them.
const (
	ComplaintOpen       = "open"
	ComplaintInProgress = "in-progress"
	ComplaintEscalated  = "escalated"
	ComplaintResolved   = "resolved"
	ComplaintClosed     = "closed"
)

// Complaint is a grievance filed by a user.
type Complaint struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Category    string    `json:"category"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ComplaintEvent is one entry of a complaint's timeline view.
type ComplaintEvent struct {
	ID          string    `json:"id"`
	ComplaintID string    `json:"complaintId"`
	Status      string    `json:"status"`
	Note        string    `json:"note,omitempty"`
	Actor       string    `json:"actor,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// ComplaintDraft is the outbound submission payload for a new complaint.
type ComplaintDraft struct {
	Category    string   `json:"category"`
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Attachments []string `json:"attachments,omitempty"` // opaque upload refs
}
