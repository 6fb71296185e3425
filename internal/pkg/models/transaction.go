package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the lifecycle state of a payment transaction
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusClosed  PaymentStatus = "CLOSED"
)

// CloseReason records why a transaction was closed without being paid
type CloseReason string

const (
	CloseReasonFailed             CloseReason = "FAILED"
	CloseReasonCancelled          CloseReason = "CANCELLED"
	CloseReasonValidationRejected CloseReason = "VALIDATION_REJECTED"
)

// Transaction tracks one payment attempt from initiation to its terminal
// outcome. UserName and UserEmail are snapshots taken at initiation so that
// the confirmation email is addressed correctly even if the user record
// changes before the gateway calls back.
type Transaction struct {
	TranID         string          `json:"tran_id" db:"tran_id"`
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`
	ClubID         uuid.UUID       `json:"club_id" db:"club_id"`
	UserName       string          `json:"user_name" db:"user_name"`
	UserEmail      string          `json:"user_email" db:"user_email"`
	UserPhone      string          `json:"user_phone" db:"user_phone"`
	Amount         float64         `json:"amount" db:"amount"`
	Currency       string          `json:"currency" db:"currency"`
	Status         PaymentStatus   `json:"payment_status" db:"status"`
	CloseReason    *CloseReason    `json:"close_reason,omitempty" db:"close_reason"`
	PaymentDetails json.RawMessage `json:"payment_details,omitempty" db:"payment_details"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
	PaidAt         *time.Time      `json:"paid_at,omitempty" db:"paid_at"`
}

// PaymentCompletedEvent is published after a transaction commits to PAID
type PaymentCompletedEvent struct {
	TranID   string    `json:"tran_id"`
	UserID   uuid.UUID `json:"user_id"`
	ClubID   uuid.UUID `json:"club_id"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	PaidAt   time.Time `json:"paid_at"`
}
