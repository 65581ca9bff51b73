package models

import "time"

// Application status values reported by the backend. The portal only ever
// causes the test-completed transition itself (optimistically, after a
// passing qualification test); every other transition is server-authoritative.
const (
	StatusPending       = "pending"
	StatusApproved      = "approved"
	StatusRejected      = "rejected"
	StatusTestCompleted = "test-completed"
)

// ApplicationStatusRecord is the server-reported state of a previously
// submitted staff application. Read-only once fetched.
type ApplicationStatusRecord struct {
	Status          string    `json:"status"`
	ApplicationDate time.Time `json:"applicationDate"`
	LastUpdate      time.Time `json:"lastUpdate"`
	TestScore       *float64  `json:"testScore"`
	Feedback        *string   `json:"feedback"`
}

// SubmissionResponse is the minimal success payload of the application
// submission call.
type SubmissionResponse struct {
	RequestID string `json:"requestId"`
}

// TestCompletion is handed back to the backend after a passing test.
type TestCompletion struct {
	RequestID string  `json:"requestId"`
	Score     float64 `json:"score"`
}
