package models

import (
	"time"

	"github.com/google/uuid"
)

// Club represents a club that users can pay to join
type Club struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	MembershipFee float64   `json:"membership_fee" db:"membership_fee"`
	Currency      string    `json:"currency" db:"currency"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// PendingMember is an entry in a club's pending-approval list. Members land
// here after a successful payment and wait for admin review.
type PendingMember struct {
	ClubID      uuid.UUID `json:"club_id" db:"club_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	RequestedAt time.Time `json:"requested_at" db:"requested_at"`
}
