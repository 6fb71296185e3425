package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/austcms/clubpay/internal/pkg/middleware"
	"github.com/austcms/clubpay/internal/pkg/models"
	httpHandler "github.com/austcms/clubpay/services/payment/handler/http"
)

// Handler coordinates the HTTP handlers for the payment service
type Handler struct {
	paymentHandler *httpHandler.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(paymentHandler *httpHandler.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the payment service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1")

	pay := v1.Group("/payment")
	pay.POST("/init", h.paymentHandler.InitiatePayment)

	// The gateway may call back with GET (browser redirect) or POST (IPN),
	// with the transaction id in the body, path or query.
	callbackMethods := []string{http.MethodGet, http.MethodPost}
	pay.Match(callbackMethods, "/success", h.paymentHandler.PaymentSuccess)
	pay.Match(callbackMethods, "/success/:tranId", h.paymentHandler.PaymentSuccess)
	pay.Match(callbackMethods, "/fail", h.paymentHandler.PaymentFail)
	pay.Match(callbackMethods, "/fail/:tranId", h.paymentHandler.PaymentFail)
	pay.Match(callbackMethods, "/cancel", h.paymentHandler.PaymentCancel)
	pay.Match(callbackMethods, "/cancel/:tranId", h.paymentHandler.PaymentCancel)

	tx := v1.Group("/transactions", middleware.JWTAuthMiddleware(h.cfg.JWT))
	tx.GET("/user/:userId", h.paymentHandler.GetTransactionsByUserID)
	tx.GET("/club/:clubId", h.paymentHandler.GetTransactionsByClubID)
}
