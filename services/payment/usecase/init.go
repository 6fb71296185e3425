package usecase

import (
	"github.com/austcms/clubpay/internal/pkg/models"
	"github.com/austcms/clubpay/services/payment"
)

// PaymentUC orchestrates payment initiation and gateway callback
// reconciliation against the transaction store and its collaborators.
type PaymentUC struct {
	cfg    *models.Config
	repo   payment.PaymentRepo
	users  payment.UserRepo
	clubs  payment.ClubRepo
	gw     payment.PaymentGW
	events payment.EventPublisher
	mailer payment.Mailer
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	cfg *models.Config,
	repo payment.PaymentRepo,
	users payment.UserRepo,
	clubs payment.ClubRepo,
	gw payment.PaymentGW,
	events payment.EventPublisher,
	mailer payment.Mailer,
) *PaymentUC {
	return &PaymentUC{
		cfg:    cfg,
		repo:   repo,
		users:  users,
		clubs:  clubs,
		gw:     gw,
		events: events,
		mailer: mailer,
	}
}
