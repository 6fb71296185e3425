package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/austcms/clubpay/internal/pkg/logger"
	"github.com/austcms/clubpay/internal/pkg/models"
	"github.com/austcms/clubpay/services/payment"
)

// validationStatusConfirmed is the single gateway validation status that
// confirms a payment as genuine. Anything else rejects the attempt.
const validationStatusConfirmed = "VALID"

// unknownTranID is the sentinel carried on failure redirects when no
// transaction identifier could be resolved from the callback.
const unknownTranID = "unknown"

// Machine-readable error markers carried on failure redirects.
const (
	errNoTransactionID     = "no_transaction_id"
	errTransactionNotFound = "transaction_not_found"
	errNoValidationID      = "no_validation_id"
	errValidationFailed    = "validation_failed"
	errPaymentFailed       = "failed"
	errPaymentCancelled    = "cancelled"
	errServerError         = "server_error"
)

// ServerErrorRedirect builds the generic failure redirect handlers fall back
// to when a callback path errors unexpectedly.
func ServerErrorRedirect(clientBaseURL, tranID string) string {
	if tranID == "" {
		tranID = unknownTranID
	}
	params := url.Values{
		"tran_id": {tranID},
		"error":   {errServerError},
	}
	return strings.TrimRight(clientBaseURL, "/") + "/payment/failed?" + params.Encode()
}

// InitiatePayment starts a membership payment for a user and club. The
// PENDING transaction is persisted before the gateway session is created, so
// a user can never complete payment for an unregistered tran_id. If session
// creation fails, the row is removed again.
func (u *PaymentUC) InitiatePayment(ctx context.Context, req *models.InitiatePaymentRequest) (string, error) {
	user, err := u.users.GetUserByID(ctx, req.UserID)
	if err != nil {
		return "", err
	}

	club, err := u.clubs.GetClubByID(ctx, req.ClubID)
	if err != nil {
		return "", err
	}

	// Phone override applies to this payment only, not the user record.
	if req.UserPhone != "" {
		user.Phone = req.UserPhone
	}

	tran := &models.Transaction{
		TranID:    uuid.New().String(),
		UserID:    user.ID,
		ClubID:    club.ID,
		UserName:  user.FullName,
		UserEmail: user.Email,
		UserPhone: user.Phone,
		Amount:    club.MembershipFee,
		Currency:  club.Currency,
		Status:    models.PaymentStatusPending,
	}

	if err := u.repo.CreateTransaction(ctx, tran); err != nil {
		return "", fmt.Errorf("failed to register transaction: %w", err)
	}

	gatewayURL, err := u.gw.InitPayment(ctx, tran)
	if err != nil {
		if delErr := u.repo.DeleteTransaction(ctx, tran.TranID); delErr != nil {
			logger.Error("Failed to remove transaction after gateway init failure",
				logger.String("tran_id", tran.TranID),
				logger.Err(delErr))
		}
		return "", fmt.Errorf("failed to create gateway session: %w", err)
	}

	logger.Info("Payment initiated",
		logger.String("tran_id", tran.TranID),
		logger.String("user_id", user.ID.String()),
		logger.String("club_id", club.ID.String()),
		logger.Float64("amount", tran.Amount))

	return gatewayURL, nil
}

// PaymentSuccess reconciles a success callback from the gateway. Expected
// failures are reported as error markers on the returned redirect URL; a
// non-nil error means an internal fault the handler turns into a generic
// failure redirect.
func (u *PaymentUC) PaymentSuccess(ctx context.Context, cb *models.PaymentCallback) (string, error) {
	if cb.TranID == "" {
		return u.failureRedirect(unknownTranID, errNoTransactionID), nil
	}

	tran, err := u.repo.GetTransaction(ctx, cb.TranID)
	if err != nil {
		if errors.Is(err, payment.ErrTransactionNotFound) {
			return u.failureRedirect(cb.TranID, errTransactionNotFound), nil
		}
		return "", err
	}

	// The gateway may deliver the success callback more than once. A PAID
	// transaction has already been reconciled: redirect without
	// re-validating or re-sending notifications.
	if tran.Status == models.PaymentStatusPaid {
		return u.successRedirect(tran), nil
	}

	// A closed transaction is terminally unresolvable for this request.
	if tran.Status == models.PaymentStatusClosed {
		return u.failureRedirect(cb.TranID, errTransactionNotFound), nil
	}

	// An incomplete callback does not prove the payment failed; leave the
	// transaction PENDING for a later, complete delivery.
	if cb.ValID == "" {
		return u.failureRedirect(cb.TranID, errNoValidationID), nil
	}

	// A transport failure reaching the validator proves nothing about the
	// payment. Surface it and leave the transaction PENDING so a redelivered
	// callback can still reconcile it.
	validation, err := u.gw.ValidatePayment(ctx, cb.ValID)
	if err != nil {
		return "", fmt.Errorf("failed to validate payment: %w", err)
	}

	// Only a delivered non-VALID verdict rejects the attempt.
	if validation == nil || validation.Status != validationStatusConfirmed {
		if _, closeErr := u.repo.CloseTransaction(ctx, cb.TranID, models.CloseReasonValidationRejected); closeErr != nil {
			logger.Error("Failed to close rejected transaction",
				logger.String("tran_id", cb.TranID),
				logger.Err(closeErr))
		}
		return u.failureRedirect(cb.TranID, errValidationFailed), nil
	}

	// Atomic conditional commit: under concurrent success callbacks exactly
	// one caller transitions PENDING -> PAID and runs the downstream
	// effects; the rest observe the already-settled state.
	committed, err := u.repo.MarkTransactionPaid(ctx, tran.TranID, validation.Raw)
	if err != nil {
		return "", err
	}

	if !committed {
		settled, err := u.repo.GetTransaction(ctx, tran.TranID)
		if err != nil {
			return "", err
		}
		if settled.Status == models.PaymentStatusPaid {
			return u.successRedirect(settled), nil
		}
		return u.failureRedirect(cb.TranID, errTransactionNotFound), nil
	}

	u.runDownstreamEffects(ctx, tran)

	return u.successRedirect(tran), nil
}

// PaymentFail handles a failed-payment callback. The transaction, if still
// pending, is closed; the caller is always redirected, even when the store
// misbehaves.
func (u *PaymentUC) PaymentFail(ctx context.Context, cb *models.PaymentCallback) string {
	tranID := cb.TranID
	if tranID == "" {
		tranID = unknownTranID
	}

	code := cb.Error
	if code == "" {
		code = errPaymentFailed
	}

	logger.Info("Payment failed",
		logger.String("tran_id", tranID),
		logger.String("error", code))

	u.closeQuietly(ctx, cb.TranID, models.CloseReasonFailed)

	return u.failureRedirect(tranID, code)
}

// PaymentCancel handles a cancelled-payment callback. Identical shape to
// PaymentFail but lands on the cancelled page with its own default marker.
func (u *PaymentUC) PaymentCancel(ctx context.Context, cb *models.PaymentCallback) string {
	tranID := cb.TranID
	if tranID == "" {
		tranID = unknownTranID
	}

	code := cb.Error
	if code == "" {
		code = errPaymentCancelled
	}

	logger.Info("Payment cancelled",
		logger.String("tran_id", tranID),
		logger.String("error", code))

	u.closeQuietly(ctx, cb.TranID, models.CloseReasonCancelled)

	return u.redirect("/payment/cancelled", url.Values{
		"tran_id": {tranID},
		"error":   {code},
	})
}

// GetTransactionsByUserID lists a user's transactions
func (u *PaymentUC) GetTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	return u.repo.GetTransactionsByUserID(ctx, userID)
}

// GetTransactionsByClubID lists a club's transactions
func (u *PaymentUC) GetTransactionsByClubID(ctx context.Context, clubID string) ([]models.Transaction, error) {
	return u.repo.GetTransactionsByClubID(ctx, clubID)
}

// runDownstreamEffects performs the best-effort work after a PAID commit:
// membership enqueue, event publishing and the confirmation email. Failures
// are logged and never invalidate the committed payment.
func (u *PaymentUC) runDownstreamEffects(ctx context.Context, tran *models.Transaction) {
	if err := u.clubs.AddUserToPendingList(ctx, tran.ClubID.String(), tran.UserID.String()); err != nil {
		logger.Error("Failed to add user to club pending list",
			logger.String("tran_id", tran.TranID),
			logger.String("club_id", tran.ClubID.String()),
			logger.String("user_id", tran.UserID.String()),
			logger.Err(err))
	}

	event := &models.PaymentCompletedEvent{
		TranID:   tran.TranID,
		UserID:   tran.UserID,
		ClubID:   tran.ClubID,
		Amount:   tran.Amount,
		Currency: tran.Currency,
		PaidAt:   time.Now(),
	}
	if err := u.events.PublishPaymentCompleted(ctx, event); err != nil {
		logger.Error("Failed to publish payment completed event",
			logger.String("tran_id", tran.TranID),
			logger.Err(err))
	}

	clubName := tran.ClubID.String()
	if club, err := u.clubs.GetClubByID(ctx, tran.ClubID.String()); err == nil {
		clubName = club.Name
	}

	subject := "Payment Successful"
	body := fmt.Sprintf(`Dear %s,

Your payment for the club %s has been successfully processed.

Transaction ID: %s

Please note that your membership is pending approval for admin review. You will be notified once your membership is approved.

Thank you for your payment.

Best regards,
The AUSTCMS Team`, tran.UserName, clubName, tran.TranID)

	if err := u.mailer.Send(tran.UserEmail, subject, body); err != nil {
		logger.Error("Failed to send payment confirmation email",
			logger.String("tran_id", tran.TranID),
			logger.String("recipient", tran.UserEmail),
			logger.Err(err))
	}
}

// closeQuietly closes a transaction and swallows every error; fail and
// cancel callbacks must redirect no matter what.
func (u *PaymentUC) closeQuietly(ctx context.Context, tranID string, reason models.CloseReason) {
	if tranID == "" {
		return
	}
	if _, err := u.repo.CloseTransaction(ctx, tranID, reason); err != nil {
		logger.Error("Failed to close transaction",
			logger.String("tran_id", tranID),
			logger.String("reason", string(reason)),
			logger.Err(err))
	}
}

func (u *PaymentUC) successRedirect(tran *models.Transaction) string {
	return u.redirect("/payment/success", url.Values{
		"tran_id": {tran.TranID},
		"status":  {"success"},
		"user_id": {tran.UserID.String()},
	})
}

func (u *PaymentUC) failureRedirect(tranID, code string) string {
	return u.redirect("/payment/failed", url.Values{
		"tran_id": {tranID},
		"error":   {code},
	})
}

func (u *PaymentUC) redirect(path string, params url.Values) string {
	base := strings.TrimRight(u.cfg.Client.BaseURL, "/")
	return base + path + "?" + params.Encode()
}
