package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/austcms/clubpay/internal/pkg/models"
	"github.com/austcms/clubpay/services/payment"
)

// CreateTransaction persists a new PENDING transaction
func (r *PaymentRepo) CreateTransaction(ctx context.Context, tran *models.Transaction) error {
	now := time.Now()
	tran.CreatedAt = now
	tran.UpdatedAt = now

	query := `
		INSERT INTO transactions (tran_id, user_id, club_id, user_name, user_email,
			user_phone, amount, currency, status, created_at, updated_at
		) VALUES (:tran_id, :user_id, :club_id, :user_name, :user_email,
			:user_phone, :amount, :currency, :status, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, tran)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves a transaction by its identifier
func (r *PaymentRepo) GetTransaction(ctx context.Context, tranID string) (*models.Transaction, error) {
	query := `
		SELECT tran_id, user_id, club_id, user_name, user_email, user_phone,
			amount, currency, status, close_reason, payment_details,
			created_at, updated_at, paid_at
		FROM transactions
		WHERE tran_id = $1
	`

	var tran models.Transaction
	err := r.db.GetContext(ctx, &tran, query, tranID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tran, nil
}

// GetTransactionsByUserID lists all transactions belonging to a user
func (r *PaymentRepo) GetTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	query := `
		SELECT tran_id, user_id, club_id, user_name, user_email, user_phone,
			amount, currency, status, close_reason, payment_details,
			created_at, updated_at, paid_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var trans []models.Transaction
	if err := r.db.SelectContext(ctx, &trans, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list transactions by user: %w", err)
	}

	return trans, nil
}

// GetTransactionsByClubID lists all transactions belonging to a club
func (r *PaymentRepo) GetTransactionsByClubID(ctx context.Context, clubID string) ([]models.Transaction, error) {
	query := `
		SELECT tran_id, user_id, club_id, user_name, user_email, user_phone,
			amount, currency, status, close_reason, payment_details,
			created_at, updated_at, paid_at
		FROM transactions
		WHERE club_id = $1
		ORDER BY created_at DESC
	`

	var trans []models.Transaction
	if err := r.db.SelectContext(ctx, &trans, query, clubID); err != nil {
		return nil, fmt.Errorf("failed to list transactions by club: %w", err)
	}

	return trans, nil
}

// MarkTransactionPaid performs the conditional PENDING -> PAID commit. The
// WHERE clause on status makes the transition atomic: under concurrent
// success callbacks for the same tran_id exactly one update hits a row.
func (r *PaymentRepo) MarkTransactionPaid(ctx context.Context, tranID string, details json.RawMessage) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $2, payment_details = $3, paid_at = $4, updated_at = $4
		WHERE tran_id = $1 AND status = $5
	`

	res, err := r.db.ExecContext(ctx, query, tranID,
		models.PaymentStatusPaid, []byte(details), time.Now(), models.PaymentStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark transaction paid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected == 1, nil
}

// CloseTransaction soft-closes a PENDING transaction with a terminal reason.
// The row is retained so failed and cancelled attempts stay auditable.
func (r *PaymentRepo) CloseTransaction(ctx context.Context, tranID string, reason models.CloseReason) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $2, close_reason = $3, updated_at = $4
		WHERE tran_id = $1 AND status = $5
	`

	res, err := r.db.ExecContext(ctx, query, tranID,
		models.PaymentStatusClosed, reason, time.Now(), models.PaymentStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to close transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected == 1, nil
}

// DeleteTransaction removes a transaction row outright
func (r *PaymentRepo) DeleteTransaction(ctx context.Context, tranID string) error {
	query := `DELETE FROM transactions WHERE tran_id = $1`

	if _, err := r.db.ExecContext(ctx, query, tranID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}
