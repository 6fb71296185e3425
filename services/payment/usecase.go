package payment

import (
	"context"

	"github.com/austcms/clubpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/austcms/clubpay/services/payment PaymentUC

// PaymentUC is the payment reconciliation usecase interface.
//
// The callback operations return the redirect URL the browser should be sent
// to; every expected failure is encoded as an error marker on that URL rather
// than a Go error. A non-nil error signals an unexpected internal fault and
// the handler degrades it to a generic failure redirect.
type PaymentUC interface {
	InitiatePayment(ctx context.Context, req *models.InitiatePaymentRequest) (string, error)
	PaymentSuccess(ctx context.Context, cb *models.PaymentCallback) (string, error)
	PaymentFail(ctx context.Context, cb *models.PaymentCallback) string
	PaymentCancel(ctx context.Context, cb *models.PaymentCallback) string
	GetTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
	GetTransactionsByClubID(ctx context.Context, clubID string) ([]models.Transaction, error)
}
