package models

import "time"

// EmployeeRequest is a work item assigned to staff: a complaint routed for
// handling, awaiting acceptance or a response.
type EmployeeRequest struct {
	ID          string    `json:"id"`
	ComplaintID string    `json:"complaintId"`
	AssigneeID  string    `json:"assigneeId"`
	State       string    `json:"state"` // assigned, accepted, responded, closed
	Response    string    `json:"response,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
