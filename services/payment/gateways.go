package payment

import (
	"context"

	"github.com/austcms/clubpay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/austcms/clubpay/services/payment PaymentGW,EventPublisher,Mailer

// PaymentGW wraps the external payment provider
type PaymentGW interface {
	// InitPayment creates a payment session for the transaction and returns
	// the gateway page URL to forward the end user to.
	InitPayment(ctx context.Context, tran *models.Transaction) (string, error)

	// ValidatePayment confirms a payment's authenticity server-side. Exactly
	// one response status means "confirmed genuine".
	ValidatePayment(ctx context.Context, valID string) (*models.ValidationResponse, error)
}

// EventPublisher publishes payment lifecycle events
type EventPublisher interface {
	PublishPaymentCompleted(ctx context.Context, event *models.PaymentCompletedEvent) error
}

// Mailer sends notification emails
type Mailer interface {
	Send(to, subject, body string) error
}
