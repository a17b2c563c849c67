package models

import "time"

// WaitlistEntry is a lead-capture record for early-access signup.
// Phone is nullable; CreatedAt is stamped by the store at insertion time.
type WaitlistEntry struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// JoinWaitlistRequest is the client-supplied portion of a waitlist entry.
type JoinWaitlistRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// WaitlistResponse is the envelope returned by the waitlist signup endpoint.
type WaitlistResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *WaitlistEntry `json:"data,omitempty"`
}
