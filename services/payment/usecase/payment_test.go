package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/austcms/clubpay/internal/pkg/models"
	"github.com/austcms/clubpay/services/payment"
	"github.com/austcms/clubpay/services/payment/mocks"
)

const testClientBaseURL = "http://localhost:3000"

type ucMocks struct {
	repo   *mocks.MockPaymentRepo
	users  *mocks.MockUserRepo
	clubs  *mocks.MockClubRepo
	gw     *mocks.MockPaymentGW
	events *mocks.MockEventPublisher
	mailer *mocks.MockMailer
}

func newTestUC(ctrl *gomock.Controller) (*PaymentUC, *ucMocks) {
	m := &ucMocks{
		repo:   mocks.NewMockPaymentRepo(ctrl),
		users:  mocks.NewMockUserRepo(ctrl),
		clubs:  mocks.NewMockClubRepo(ctrl),
		gw:     mocks.NewMockPaymentGW(ctrl),
		events: mocks.NewMockEventPublisher(ctrl),
		mailer: mocks.NewMockMailer(ctrl),
	}

	cfg := &models.Config{
		Client: models.ClientConfig{BaseURL: testClientBaseURL},
	}

	return NewPaymentUC(cfg, m.repo, m.users, m.clubs, m.gw, m.events, m.mailer), m
}

func pendingTransaction(tranID string) *models.Transaction {
	return &models.Transaction{
		TranID:    tranID,
		UserID:    uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		ClubID:    uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		UserName:  "Test User",
		UserEmail: "user@example.com",
		UserPhone: "01700000000",
		Amount:    500,
		Currency:  "BDT",
		Status:    models.PaymentStatusPending,
	}
}

func TestInitiatePayment(t *testing.T) {
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	clubID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	user := &models.User{
		ID:       userID,
		FullName: "Test User",
		Email:    "user@example.com",
		Phone:    "01700000000",
	}
	club := &models.Club{
		ID:            clubID,
		Name:          "Chess Club",
		MembershipFee: 500,
		Currency:      "BDT",
	}

	t.Run("creates transaction and returns gateway URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		req := &models.InitiatePaymentRequest{
			UserID: userID.String(),
			ClubID: clubID.String(),
		}

		m.users.EXPECT().GetUserByID(gomock.Any(), userID.String()).Return(user, nil)
		m.clubs.EXPECT().GetClubByID(gomock.Any(), clubID.String()).Return(club, nil)

		var created *models.Transaction
		m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tran *models.Transaction) error {
				created = tran
				return nil
			})
		m.gw.EXPECT().InitPayment(gomock.Any(), gomock.Any()).Return("https://gateway.example.com/pay", nil)

		url, err := uc.InitiatePayment(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "https://gateway.example.com/pay", url)
		assert.NotEmpty(t, created.TranID)
		assert.Equal(t, userID, created.UserID)
		assert.Equal(t, clubID, created.ClubID)
		assert.Equal(t, "Test User", created.UserName)
		assert.Equal(t, 500.0, created.Amount)
		assert.Equal(t, "BDT", created.Currency)
		assert.Equal(t, models.PaymentStatusPending, created.Status)
	})

	t.Run("request phone overrides the user record for this payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		req := &models.InitiatePaymentRequest{
			UserID:    userID.String(),
			ClubID:    clubID.String(),
			UserPhone: "01911111111",
		}

		u := *user
		m.users.EXPECT().GetUserByID(gomock.Any(), userID.String()).Return(&u, nil)
		m.clubs.EXPECT().GetClubByID(gomock.Any(), clubID.String()).Return(club, nil)

		var created *models.Transaction
		m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tran *models.Transaction) error {
				created = tran
				return nil
			})
		m.gw.EXPECT().InitPayment(gomock.Any(), gomock.Any()).Return("https://gateway.example.com/pay", nil)

		_, err := uc.InitiatePayment(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "01911111111", created.UserPhone)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.users.EXPECT().GetUserByID(gomock.Any(), userID.String()).Return(nil, payment.ErrUserNotFound)

		_, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
			UserID: userID.String(),
			ClubID: clubID.String(),
		})

		assert.ErrorIs(t, err, payment.ErrUserNotFound)
	})

	t.Run("unknown club", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.users.EXPECT().GetUserByID(gomock.Any(), userID.String()).Return(user, nil)
		m.clubs.EXPECT().GetClubByID(gomock.Any(), clubID.String()).Return(nil, payment.ErrClubNotFound)

		_, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
			UserID: userID.String(),
			ClubID: clubID.String(),
		})

		assert.ErrorIs(t, err, payment.ErrClubNotFound)
	})

	t.Run("gateway session failure removes the pending transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.users.EXPECT().GetUserByID(gomock.Any(), userID.String()).Return(user, nil)
		m.clubs.EXPECT().GetClubByID(gomock.Any(), clubID.String()).Return(club, nil)

		var tranID string
		m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tran *models.Transaction) error {
				tranID = tran.TranID
				return nil
			})
		m.gw.EXPECT().InitPayment(gomock.Any(), gomock.Any()).Return("", errors.New("session rejected"))
		m.repo.EXPECT().DeleteTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string) error {
				assert.Equal(t, tranID, id)
				return nil
			})

		_, err := uc.InitiatePayment(context.Background(), &models.InitiatePaymentRequest{
			UserID: userID.String(),
			ClubID: clubID.String(),
		})

		assert.Error(t, err)
	})
}

func TestPaymentSuccess(t *testing.T) {
	validation := &models.ValidationResponse{
		Status: "VALID",
		TranID: "tran-1",
		ValID:  "val-1",
		Raw:    json.RawMessage(`{"status":"VALID"}`),
	}

	t.Run("confirms payment and runs downstream effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		tran := pendingTransaction("tran-1")

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(tran, nil)
		m.gw.EXPECT().ValidatePayment(gomock.Any(), "val-1").Return(validation, nil)
		m.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "tran-1", validation.Raw).Return(true, nil)

		m.clubs.EXPECT().AddUserToPendingList(gomock.Any(), tran.ClubID.String(), tran.UserID.String()).Return(nil)
		m.events.EXPECT().PublishPaymentCompleted(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *models.PaymentCompletedEvent) error {
				assert.Equal(t, "tran-1", event.TranID)
				assert.Equal(t, tran.UserID, event.UserID)
				assert.Equal(t, 500.0, event.Amount)
				return nil
			})
		m.clubs.EXPECT().GetClubByID(gomock.Any(), tran.ClubID.String()).
			Return(&models.Club{ID: tran.ClubID, Name: "Chess Club"}, nil)
		m.mailer.EXPECT().Send("user@example.com", "Payment Successful", gomock.Any()).Return(nil)

		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1", ValID: "val-1"})

		assert.NoError(t, err)
		assert.Contains(t, redirect, testClientBaseURL+"/payment/success?")
		assert.Contains(t, redirect, "tran_id=tran-1")
		assert.Contains(t, redirect, "status=success")
	})

	t.Run("duplicate callback on a paid transaction short-circuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		tran := pendingTransaction("tran-1")
		tran.Status = models.PaymentStatusPaid

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(tran, nil)

		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1", ValID: "val-1"})

		assert.NoError(t, err)
		assert.Contains(t, redirect, "/payment/success?")
		assert.Contains(t, redirect, "tran_id=tran-1")
	})

	t.Run("missing transaction id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestUC(ctrl)

		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{})

		assert.NoError(t, err)
		assert.Contains(t, redirect, "/payment/failed?")
		assert.Contains(t, redirect, "error=no_transaction_id")
		assert.Contains(t, redirect, "tran_id=unknown")
	})

	t.Run("unregistered transaction id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-x").Return(nil, payment.ErrTransactionNotFound)

		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-x", ValID: "val-1"})

		assert.NoError(t, err)
		assert.Contains(t, redirect, "error=transaction_not_found")
		assert.Contains(t, redirect, "tran_id=tran-x")
	})

	t.Run("closed transaction is unresolvable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		tran := pendingTransaction("tran-1")
		tran.Status = models.PaymentStatusClosed

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(tran, nil)

		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1", ValID: "val-1"})

		assert.NoError(t, err)
		assert.Contains(t, redirect, "error=transaction_not_found")
	})

	t.Run("missing validation id leaves the transaction pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(pendingTransaction("tran-1"), nil)

		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1"})

		assert.NoError(t, err)
		assert.Contains(t, redirect, "error=no_validation_id")
	})

	t.Run("gateway rejects validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(pendingTransaction("tran-1"), nil)
		m.gw.EXPECT().ValidatePayment(gomock.Any(), "val-1").
			Return(&models.ValidationResponse{Status: "FAILED"}, nil)
		m.repo.EXPECT().CloseTransaction(gomock.Any(), "tran-1", models.CloseReasonValidationRejected).Return(true, nil)

		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1", ValID: "val-1"})

		assert.NoError(t, err)
		assert.Contains(t, redirect, "error=validation_failed")
	})

	t.Run("validator outage leaves the transaction pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(pendingTransaction("tran-1"), nil)
		m.gw.EXPECT().ValidatePayment(gomock.Any(), "val-1").Return(nil, errors.New("dial tcp: connection refused"))

		// No CloseTransaction: a transport failure must not reject the
		// attempt, so a redelivered callback can still reconcile it.
		_, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1", ValID: "val-1"})

		assert.Error(t, err)
	})

	t.Run("delivered nil validation rejects the attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(pendingTransaction("tran-1"), nil)
		m.gw.EXPECT().ValidatePayment(gomock.Any(), "val-1").Return(nil, nil)
		m.repo.EXPECT().CloseTransaction(gomock.Any(), "tran-1", models.CloseReasonValidationRejected).Return(true, nil)

		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1", ValID: "val-1"})

		assert.NoError(t, err)
		assert.Contains(t, redirect, "error=validation_failed")
	})

	t.Run("losing a concurrent commit race still redirects to success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		tran := pendingTransaction("tran-1")
		settled := pendingTransaction("tran-1")
		settled.Status = models.PaymentStatusPaid

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(tran, nil)
		m.gw.EXPECT().ValidatePayment(gomock.Any(), "val-1").Return(validation, nil)
		m.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "tran-1", validation.Raw).Return(false, nil)
		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(settled, nil)

		// No downstream effects: the winning caller already ran them.
		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1", ValID: "val-1"})

		assert.NoError(t, err)
		assert.Contains(t, redirect, "/payment/success?")
	})

	t.Run("losing the race to a closed transaction redirects to failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		settled := pendingTransaction("tran-1")
		settled.Status = models.PaymentStatusClosed

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(pendingTransaction("tran-1"), nil)
		m.gw.EXPECT().ValidatePayment(gomock.Any(), "val-1").Return(validation, nil)
		m.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "tran-1", validation.Raw).Return(false, nil)
		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(settled, nil)

		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1", ValID: "val-1"})

		assert.NoError(t, err)
		assert.Contains(t, redirect, "error=transaction_not_found")
	})

	t.Run("store failure surfaces as an internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(nil, errors.New("connection lost"))

		_, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1", ValID: "val-1"})

		assert.Error(t, err)
	})

	t.Run("downstream effect failures never invalidate the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		tran := pendingTransaction("tran-1")

		m.repo.EXPECT().GetTransaction(gomock.Any(), "tran-1").Return(tran, nil)
		m.gw.EXPECT().ValidatePayment(gomock.Any(), "val-1").Return(validation, nil)
		m.repo.EXPECT().MarkTransactionPaid(gomock.Any(), "tran-1", validation.Raw).Return(true, nil)

		m.clubs.EXPECT().AddUserToPendingList(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		m.events.EXPECT().PublishPaymentCompleted(gomock.Any(), gomock.Any()).Return(errors.New("nsqd down"))
		m.clubs.EXPECT().GetClubByID(gomock.Any(), tran.ClubID.String()).Return(nil, errors.New("cache miss"))
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		redirect, err := uc.PaymentSuccess(context.Background(), &models.PaymentCallback{TranID: "tran-1", ValID: "val-1"})

		assert.NoError(t, err)
		assert.Contains(t, redirect, "/payment/success?")
	})
}

func TestPaymentFail(t *testing.T) {
	t.Run("closes the transaction and redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.repo.EXPECT().CloseTransaction(gomock.Any(), "tran-1", models.CloseReasonFailed).Return(true, nil)

		redirect := uc.PaymentFail(context.Background(), &models.PaymentCallback{TranID: "tran-1"})

		assert.Contains(t, redirect, "/payment/failed?")
		assert.Contains(t, redirect, "tran_id=tran-1")
		assert.Contains(t, redirect, "error=failed")
	})

	t.Run("carries the gateway error code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.repo.EXPECT().CloseTransaction(gomock.Any(), "tran-1", models.CloseReasonFailed).Return(true, nil)

		redirect := uc.PaymentFail(context.Background(), &models.PaymentCallback{TranID: "tran-1", Error: "insufficient_funds"})

		assert.Contains(t, redirect, "error=insufficient_funds")
	})

	t.Run("missing transaction id skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestUC(ctrl)

		redirect := uc.PaymentFail(context.Background(), &models.PaymentCallback{})

		assert.Contains(t, redirect, "tran_id=unknown")
		assert.Contains(t, redirect, "error=failed")
	})

	t.Run("store failure still redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.repo.EXPECT().CloseTransaction(gomock.Any(), "tran-1", models.CloseReasonFailed).
			Return(false, errors.New("connection lost"))

		redirect := uc.PaymentFail(context.Background(), &models.PaymentCallback{TranID: "tran-1"})

		assert.Contains(t, redirect, "/payment/failed?")
	})
}

func TestPaymentCancel(t *testing.T) {
	t.Run("closes the transaction and redirects to the cancelled page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		m.repo.EXPECT().CloseTransaction(gomock.Any(), "tran-1", models.CloseReasonCancelled).Return(true, nil)

		redirect := uc.PaymentCancel(context.Background(), &models.PaymentCallback{TranID: "tran-1"})

		assert.Contains(t, redirect, "/payment/cancelled?")
		assert.Contains(t, redirect, "tran_id=tran-1")
		assert.Contains(t, redirect, "error=cancelled")
	})

	t.Run("missing transaction id skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newTestUC(ctrl)

		redirect := uc.PaymentCancel(context.Background(), &models.PaymentCallback{})

		assert.Contains(t, redirect, "tran_id=unknown")
	})
}

func TestGetTransactions(t *testing.T) {
	t.Run("by user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		expected := []models.Transaction{*pendingTransaction("tran-1")}
		m.repo.EXPECT().GetTransactionsByUserID(gomock.Any(), "user-1").Return(expected, nil)

		trans, err := uc.GetTransactionsByUserID(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, expected, trans)
	})

	t.Run("by club id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTestUC(ctrl)

		expected := []models.Transaction{*pendingTransaction("tran-1")}
		m.repo.EXPECT().GetTransactionsByClubID(gomock.Any(), "club-1").Return(expected, nil)

		trans, err := uc.GetTransactionsByClubID(context.Background(), "club-1")

		assert.NoError(t, err)
		assert.Equal(t, expected, trans)
	})
}
