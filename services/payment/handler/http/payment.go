package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/austcms/clubpay/internal/pkg/logger"
	"github.com/austcms/clubpay/internal/pkg/models"
	"github.com/austcms/clubpay/services/payment"
	"github.com/austcms/clubpay/services/payment/usecase"
)

// PaymentHandler handles payment initiation, gateway callbacks and
// transaction queries.
type PaymentHandler struct {
	paymentUC payment.PaymentUC
	cfg       *models.Config
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC, cfg *models.Config) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		cfg:       cfg,
	}
}

// InitiatePayment handles payment initiation requests
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	gatewayURL, err := h.paymentUC.InitiatePayment(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, payment.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "User not found"})
		}
		if errors.Is(err, payment.ErrClubNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Club not found"})
		}
		logger.Error("Failed to initiate payment",
			logger.String("user_id", req.UserID),
			logger.String("club_id", req.ClubID),
			logger.Err(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to initiate payment"})
	}

	return c.JSON(http.StatusOK, models.InitiatePaymentResponse{URL: gatewayURL})
}

// PaymentSuccess handles the gateway's success callback. The caller is a
// browser mid-redirect-chain, so every outcome is a redirect; errors degrade
// to a generic failure page rather than a JSON body.
func (h *PaymentHandler) PaymentSuccess(c echo.Context) error {
	cb := h.bindCallback(c)

	redirectURL, err := h.paymentUC.PaymentSuccess(c.Request().Context(), cb)
	if err != nil {
		logger.Error("Payment success callback failed",
			logger.String("tran_id", cb.TranID),
			logger.Err(err))
		redirectURL = usecase.ServerErrorRedirect(h.cfg.Client.BaseURL, cb.TranID)
	}

	return c.Redirect(http.StatusFound, redirectURL)
}

// PaymentFail handles the gateway's failure callback
func (h *PaymentHandler) PaymentFail(c echo.Context) error {
	cb := h.bindCallback(c)

	return c.Redirect(http.StatusFound, h.paymentUC.PaymentFail(c.Request().Context(), cb))
}

// PaymentCancel handles the gateway's cancellation callback
func (h *PaymentHandler) PaymentCancel(c echo.Context) error {
	cb := h.bindCallback(c)

	return c.Redirect(http.StatusFound, h.paymentUC.PaymentCancel(c.Request().Context(), cb))
}

// GetTransactionsByUserID handles transaction queries by user
func (h *PaymentHandler) GetTransactionsByUserID(c echo.Context) error {
	userID := c.Param("userId")

	trans, err := h.paymentUC.GetTransactionsByUserID(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list transactions by user",
			logger.String("user_id", userID),
			logger.Err(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve transactions"})
	}
	if len(trans) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Transaction not found"})
	}

	return c.JSON(http.StatusOK, trans)
}

// GetTransactionsByClubID handles transaction queries by club
func (h *PaymentHandler) GetTransactionsByClubID(c echo.Context) error {
	clubID := c.Param("clubId")

	trans, err := h.paymentUC.GetTransactionsByClubID(c.Request().Context(), clubID)
	if err != nil {
		logger.Error("Failed to list transactions by club",
			logger.String("club_id", clubID),
			logger.Err(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve transactions"})
	}
	if len(trans) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Transaction not found"})
	}

	return c.JSON(http.StatusOK, trans)
}

// bindCallback normalizes a gateway callback regardless of transport. The
// gateway may deliver identifiers in the posted body, the path or the query
// string depending on its configuration, so all three are consulted.
func (h *PaymentHandler) bindCallback(c echo.Context) *models.PaymentCallback {
	var payload models.CallbackPayload
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		// A malformed body must not abort the callback; the identifiers may
		// still be present in the path or query.
		logger.Debug("Failed to bind callback body", logger.Err(err))
	}

	return &models.PaymentCallback{
		TranID: usecase.ResolveTranID(payload.TranID, c.Param("tranId"), c.QueryParam("tran_id")),
		ValID:  usecase.ResolveValID(c.QueryParam("val_id"), payload.ValID),
		Error:  firstNonEmpty(payload.Error, c.QueryParam("error")),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
