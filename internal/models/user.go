package models

import "time"

// User is the authenticated account as reported by the backend.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // user, staff, admin
	CreatedAt time.Time `json:"createdAt"`
}
