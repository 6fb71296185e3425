package payment

import (
	"context"
	"encoding/json"

	"github.com/austcms/clubpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/austcms/clubpay/services/payment PaymentRepo,UserRepo,ClubRepo

// PaymentRepo is the transaction store
type PaymentRepo interface {
	CreateTransaction(ctx context.Context, tran *models.Transaction) error
	GetTransaction(ctx context.Context, tranID string) (*models.Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
	GetTransactionsByClubID(ctx context.Context, clubID string) ([]models.Transaction, error)

	// MarkTransactionPaid performs the atomic PENDING -> PAID transition,
	// attaching the gateway validation payload. It reports false when the
	// transaction was not in PENDING state, so concurrent callers can detect
	// that another request already committed.
	MarkTransactionPaid(ctx context.Context, tranID string, details json.RawMessage) (bool, error)

	// CloseTransaction soft-closes a PENDING transaction with the given
	// reason. Closed rows are retained for audit. It reports false when the
	// transaction was not in PENDING state.
	CloseTransaction(ctx context.Context, tranID string, reason models.CloseReason) (bool, error)

	// DeleteTransaction removes a transaction outright. Only used to
	// compensate a failed gateway session creation, where the row never
	// represented a real payment attempt.
	DeleteTransaction(ctx context.Context, tranID string) error
}

// UserRepo is the user lookup collaborator
type UserRepo interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// ClubRepo is the club lookup and pending-approval list collaborator
type ClubRepo interface {
	GetClubByID(ctx context.Context, id string) (*models.Club, error)

	// AddUserToPendingList is idempotent; replayed callbacks cannot enqueue
	// the same member twice.
	AddUserToPendingList(ctx context.Context, clubID, userID string) error

	GetPendingMembers(ctx context.Context, clubID string) ([]models.PendingMember, error)
}
