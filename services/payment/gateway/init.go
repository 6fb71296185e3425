package gateway

import (
	"time"

	"github.com/austcms/clubpay/internal/pkg/httpclient"
	"github.com/austcms/clubpay/internal/pkg/models"
)

// PaymentGW is the SSLCommerz gateway client
type PaymentGW struct {
	cfg    *models.Config
	client *httpclient.Client
}

// NewPaymentGW creates a new payment gateway client
func NewPaymentGW(cfg *models.Config) *PaymentGW {
	return &PaymentGW{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.SSLCommerz.SessionURL, 30*time.Second),
	}
}
