package payment

import "errors"

// Sentinel errors for the reconciliation flow. Handlers map these onto the
// HTTP contract: 400 JSON at initiation, redirect markers on callbacks.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrClubNotFound        = errors.New("club not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)
