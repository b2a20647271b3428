package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/internal/pkg/recordstore"
	"github.com/stratodeck/copytrade/services/payments"
	"github.com/stratodeck/copytrade/services/payments/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Payments: models.PaymentsConfig{
			DefaultCurrency: "USD",
		},
	}
}

func newTestUC(ctrl *gomock.Controller) (*PaymentUC, *mocks.MockPaymentRepo, *mocks.MockStrategyRegistry, *mocks.MockPaymentGW, *mocks.MockPendingCache) {
	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockRegistry := mocks.NewMockStrategyRegistry(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockCache := mocks.NewMockPendingCache(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockRegistry, mockGW, mockCache)
	return uc, mockRepo, mockRegistry, mockGW, mockCache
}

func TestCreateTransaction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, mockCache := newTestUC(ctrl)
	userID := uuid.New()

	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			assert.Equal(t, userID, tx.UserID)
			assert.True(t, tx.Amount.Equal(decimal.RequireFromString("49.99")))
			assert.Equal(t, "USD", tx.Currency)
			return nil
		})
	mockCache.EXPECT().Invalidate(gomock.Any())

	tx, err := uc.CreateTransaction(context.Background(), userID, models.CreateTransactionRequest{
		Amount:        "49.99",
		PaymentMethod: "bank-transfer",
	})

	assert.NoError(t, err)
	assert.NotNil(t, tx)
	assert.Equal(t, "USD", tx.Currency)
}

func TestCreateTransaction_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUC(ctrl)

	_, err := uc.CreateTransaction(context.Background(), uuid.New(), models.CreateTransactionRequest{
		Amount:        "-5",
		PaymentMethod: "bank-transfer",
	})
	assert.ErrorIs(t, err, payments.ErrValidation)

	_, err = uc.CreateTransaction(context.Background(), uuid.New(), models.CreateTransactionRequest{
		Amount:        "not-a-number",
		PaymentMethod: "bank-transfer",
	})
	assert.ErrorIs(t, err, payments.ErrValidation)
}

func TestCreateTransaction_MissingPaymentMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUC(ctrl)

	_, err := uc.CreateTransaction(context.Background(), uuid.New(), models.CreateTransactionRequest{
		Amount: "10",
	})
	assert.ErrorIs(t, err, payments.ErrValidation)
}

func TestAttachProof_EnsuresRunningStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockRegistry, _, mockCache := newTestUC(ctrl)
	userID := uuid.New()
	txID := uuid.New()
	strategyID := uuid.New()

	pending := &models.Transaction{
		ID:         txID,
		UserID:     userID,
		StrategyID: &strategyID,
		Status:     models.TransactionPending,
		Amount:     decimal.RequireFromString("100"),
	}
	inProcess := &models.Transaction{
		ID:              txID,
		UserID:          userID,
		StrategyID:      &strategyID,
		Status:          models.TransactionInProcess,
		Amount:          decimal.RequireFromString("100"),
		PlanLevel:       models.PlanPro,
		AccountID:       "10023",
		AccountPassword: "secret",
		AccountServer:   "Broker-Live01",
	}

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(pending, nil)
	mockRepo.EXPECT().AttachProof(gomock.Any(), txID, gomock.Any()).Return(inProcess, true, nil)
	mockRegistry.EXPECT().Ensure(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rs *models.RunningStrategy) (bool, error) {
			assert.Equal(t, userID, rs.UserID)
			assert.Equal(t, strategyID, rs.StrategyID)
			assert.Equal(t, txID, rs.TransactionID)
			assert.Equal(t, "secret", rs.AccountPassword)
			return true, nil
		})
	mockCache.EXPECT().Invalidate(gomock.Any())

	got, err := uc.AttachProof(context.Background(), userID, txID, models.AttachProofRequest{
		ReceiptReference: "receipt-001",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.TransactionInProcess, got.Status)
}

func TestAttachProof_OtherUsersTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, _ := newTestUC(ctrl)
	txID := uuid.New()

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(&models.Transaction{
		ID:     txID,
		UserID: uuid.New(),
		Status: models.TransactionPending,
	}, nil)

	_, err := uc.AttachProof(context.Background(), uuid.New(), txID, models.AttachProofRequest{
		ReceiptReference: "receipt-001",
	})
	assert.ErrorIs(t, err, payments.ErrForbidden)
}

func TestAttachProof_AlreadyDecidedSkipsRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, mockCache := newTestUC(ctrl)
	userID := uuid.New()
	txID := uuid.New()
	strategyID := uuid.New()

	completed := &models.Transaction{
		ID:         txID,
		UserID:     userID,
		StrategyID: &strategyID,
		Status:     models.TransactionCompleted,
	}

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(completed, nil)
	mockRepo.EXPECT().AttachProof(gomock.Any(), txID, gomock.Any()).Return(completed, false, nil)
	mockCache.EXPECT().Invalidate(gomock.Any())

	got, err := uc.AttachProof(context.Background(), userID, txID, models.AttachProofRequest{
		ReceiptReference: "receipt-001",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, got.Status)
}

func TestApprove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, mockGW, mockCache := newTestUC(ctrl)
	adminID := uuid.New()
	userID := uuid.New()
	txID := uuid.New()
	amount := decimal.RequireFromString("75.50")

	inProcess := &models.Transaction{
		ID:     txID,
		UserID: userID,
		Status: models.TransactionInProcess,
		Amount: amount,
	}
	completed := &models.Transaction{
		ID:             txID,
		UserID:         userID,
		Status:         models.TransactionCompleted,
		Amount:         amount,
		CreditedAmount: amount,
	}
	user := &models.User{ID: userID, WalletBalance: amount}

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(inProcess, nil)
	mockRepo.EXPECT().DecideTransaction(gomock.Any(), txID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, d recordstore.Decision) (*models.Transaction, *models.User, bool, error) {
			assert.Equal(t, models.TransactionCompleted, d.Status)
			assert.Equal(t, adminID, d.AdminID)
			assert.True(t, d.CreditAmount.Equal(amount))
			return completed, user, true, nil
		})
	mockGW.EXPECT().PublishPaymentEvent(models.SubjectPaymentApproved, gomock.Any()).Return(nil)
	mockCache.EXPECT().Invalidate(gomock.Any())

	result, err := uc.Approve(context.Background(), adminID, txID, "")

	assert.NoError(t, err)
	assert.False(t, result.AlreadyDecided)
	assert.Equal(t, models.TransactionCompleted, result.Transaction.Status)
	assert.NotNil(t, result.User)
}

func TestApprove_EventCarriesUserEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, mockGW, mockCache := newTestUC(ctrl)
	userID := uuid.New()
	txID := uuid.New()
	amount := decimal.RequireFromString("60")

	inProcess := &models.Transaction{ID: txID, UserID: userID, Status: models.TransactionInProcess, Amount: amount}
	completed := &models.Transaction{ID: txID, UserID: userID, Status: models.TransactionCompleted, Amount: amount}
	user := &models.User{ID: userID, Email: "trader@example.com", WalletBalance: amount}

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(inProcess, nil)
	mockRepo.EXPECT().DecideTransaction(gomock.Any(), txID, gomock.Any()).Return(completed, user, true, nil)
	mockGW.EXPECT().PublishPaymentEvent(models.SubjectPaymentApproved, gomock.Any()).
		DoAndReturn(func(_ string, e models.PaymentEvent) error {
			// the notify consumer drops events without a recipient email
			assert.Equal(t, "trader@example.com", e.UserEmail)
			assert.Equal(t, models.TransactionCompleted, e.Status)
			return nil
		})
	mockCache.EXPECT().Invalidate(gomock.Any())

	_, err := uc.Approve(context.Background(), uuid.New(), txID, "")
	assert.NoError(t, err)
}

func TestApprove_CustomAmountOverridesDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, mockGW, mockCache := newTestUC(ctrl)
	txID := uuid.New()

	inProcess := &models.Transaction{
		ID:     txID,
		UserID: uuid.New(),
		Status: models.TransactionInProcess,
		Amount: decimal.RequireFromString("100"),
	}
	completed := &models.Transaction{ID: txID, UserID: inProcess.UserID, Status: models.TransactionCompleted}

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(inProcess, nil)
	mockRepo.EXPECT().DecideTransaction(gomock.Any(), txID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, d recordstore.Decision) (*models.Transaction, *models.User, bool, error) {
			assert.True(t, d.CreditAmount.Equal(decimal.RequireFromString("80")))
			return completed, &models.User{}, true, nil
		})
	mockGW.EXPECT().PublishPaymentEvent(models.SubjectPaymentApproved, gomock.Any()).Return(nil)
	mockCache.EXPECT().Invalidate(gomock.Any())

	_, err := uc.Approve(context.Background(), uuid.New(), txID, "80")
	assert.NoError(t, err)
}

func TestApprove_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, _ := newTestUC(ctrl)
	txID := uuid.New()

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(&models.Transaction{
		ID:     txID,
		Status: models.TransactionInProcess,
	}, nil)

	_, err := uc.Approve(context.Background(), uuid.New(), txID, "zero-ish")
	assert.ErrorIs(t, err, payments.ErrValidation)
}

func TestApprove_AlreadyDecidedIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, _ := newTestUC(ctrl)
	txID := uuid.New()

	failed := &models.Transaction{
		ID:     txID,
		Status: models.TransactionFailed,
		Amount: decimal.RequireFromString("10"),
	}

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(failed, nil)
	mockRepo.EXPECT().DecideTransaction(gomock.Any(), txID, gomock.Any()).Return(failed, nil, false, nil)

	result, err := uc.Approve(context.Background(), uuid.New(), txID, "")

	assert.NoError(t, err)
	assert.True(t, result.AlreadyDecided)
	assert.Equal(t, models.TransactionFailed, result.Transaction.Status)
}

func TestApprove_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, _ := newTestUC(ctrl)
	txID := uuid.New()

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(nil, recordstore.ErrNotFound)

	_, err := uc.Approve(context.Background(), uuid.New(), txID, "")
	assert.ErrorIs(t, err, payments.ErrNotFound)
}

func TestReject_RemovesRunningStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockRegistry, mockGW, mockCache := newTestUC(ctrl)
	adminID := uuid.New()
	userID := uuid.New()
	txID := uuid.New()
	strategyID := uuid.New()

	failed := &models.Transaction{
		ID:              txID,
		UserID:          userID,
		StrategyID:      &strategyID,
		Status:          models.TransactionFailed,
		RejectionReason: "receipt unreadable",
	}

	mockRepo.EXPECT().DecideTransaction(gomock.Any(), txID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, d recordstore.Decision) (*models.Transaction, *models.User, bool, error) {
			assert.Equal(t, models.TransactionFailed, d.Status)
			assert.Equal(t, "receipt unreadable", d.Reason)
			return failed, nil, true, nil
		})
	mockRegistry.EXPECT().Remove(gomock.Any(), userID, strategyID).Return(nil)
	mockRepo.EXPECT().GetUser(gomock.Any(), userID).Return(&models.User{ID: userID, Email: "trader@example.com"}, nil)
	mockGW.EXPECT().PublishPaymentEvent(models.SubjectPaymentRejected, gomock.Any()).
		DoAndReturn(func(_ string, e models.PaymentEvent) error {
			assert.Equal(t, "trader@example.com", e.UserEmail)
			assert.Equal(t, "receipt unreadable", e.Reason)
			return nil
		})
	mockCache.EXPECT().Invalidate(gomock.Any())

	result, err := uc.Reject(context.Background(), adminID, txID, "receipt unreadable")

	assert.NoError(t, err)
	assert.False(t, result.AlreadyDecided)
}

func TestReject_AlreadyDecidedSkipsSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, _ := newTestUC(ctrl)
	txID := uuid.New()
	strategyID := uuid.New()

	completed := &models.Transaction{
		ID:         txID,
		StrategyID: &strategyID,
		Status:     models.TransactionCompleted,
	}

	mockRepo.EXPECT().DecideTransaction(gomock.Any(), txID, gomock.Any()).Return(completed, nil, false, nil)

	result, err := uc.Reject(context.Background(), uuid.New(), txID, "late")

	assert.NoError(t, err)
	assert.True(t, result.AlreadyDecided)
	assert.Equal(t, models.TransactionCompleted, result.Transaction.Status)
}

func TestReject_RegistryRemovalFailureDoesNotFailDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockRegistry, mockGW, mockCache := newTestUC(ctrl)
	txID := uuid.New()
	strategyID := uuid.New()

	failed := &models.Transaction{
		ID:         txID,
		UserID:     uuid.New(),
		StrategyID: &strategyID,
		Status:     models.TransactionFailed,
	}

	mockRepo.EXPECT().DecideTransaction(gomock.Any(), txID, gomock.Any()).Return(failed, nil, true, nil)
	mockRegistry.EXPECT().Remove(gomock.Any(), failed.UserID, strategyID).Return(errors.New("registry down"))
	mockRepo.EXPECT().GetUser(gomock.Any(), failed.UserID).Return(&models.User{ID: failed.UserID}, nil)
	mockGW.EXPECT().PublishPaymentEvent(models.SubjectPaymentRejected, gomock.Any()).Return(nil)
	mockCache.EXPECT().Invalidate(gomock.Any())

	result, err := uc.Reject(context.Background(), uuid.New(), txID, "")

	assert.NoError(t, err)
	assert.False(t, result.AlreadyDecided)
}

func TestSendMessage_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, mockGW, mockCache := newTestUC(ctrl)
	adminID := uuid.New()
	userID := uuid.New()
	txID := uuid.New()

	tx := &models.Transaction{ID: txID, UserID: userID, Status: models.TransactionInProcess}

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(tx, nil)
	mockRepo.EXPECT().SetAdminMessage(gomock.Any(), txID, adminID, "please resend the receipt").Return(tx, true, nil)
	mockRepo.EXPECT().GetUser(gomock.Any(), userID).Return(&models.User{ID: userID, Email: "trader@example.com"}, nil)
	mockGW.EXPECT().PublishAdminMessage(gomock.Any()).
		DoAndReturn(func(event models.AdminMessageEvent) error {
			assert.Equal(t, txID, event.TransactionID)
			assert.Equal(t, "trader@example.com", event.UserEmail)
			assert.Equal(t, "please resend the receipt", event.Message)
			return nil
		})
	mockCache.EXPECT().Invalidate(gomock.Any())

	_, err := uc.SendMessage(context.Background(), adminID, txID, "please resend the receipt")
	assert.NoError(t, err)
}

func TestSendMessage_EmptyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _ := newTestUC(ctrl)

	_, err := uc.SendMessage(context.Background(), uuid.New(), uuid.New(), "")
	assert.ErrorIs(t, err, payments.ErrValidation)
}

func TestSendMessage_TerminalTransactionIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, mockCache := newTestUC(ctrl)
	adminID := uuid.New()
	txID := uuid.New()

	tx := &models.Transaction{ID: txID, UserID: uuid.New(), Status: models.TransactionCompleted}

	mockRepo.EXPECT().GetTransaction(gomock.Any(), txID).Return(tx, nil)
	mockRepo.EXPECT().SetAdminMessage(gomock.Any(), txID, adminID, "too late").Return(tx, false, nil)
	mockCache.EXPECT().Invalidate(gomock.Any())

	got, err := uc.SendMessage(context.Background(), adminID, txID, "too late")

	assert.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, got.Status)
}

func TestListPending_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, mockCache := newTestUC(ctrl)

	cached := []models.PendingPayment{
		{UserEmail: "trader@example.com"},
	}
	mockCache.EXPECT().Get(gomock.Any()).Return(cached, true)

	items, err := uc.ListPending(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, cached, items)
}

func TestListPending_CacheMissFallsBackToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _, _, mockCache := newTestUC(ctrl)

	fresh := []models.PendingPayment{
		{UserEmail: "a@example.com"},
		{UserEmail: "b@example.com"},
	}
	mockCache.EXPECT().Get(gomock.Any()).Return(nil, false)
	mockRepo.EXPECT().ListPendingPayments(gomock.Any()).Return(fresh, nil)
	mockCache.EXPECT().Set(gomock.Any(), fresh)

	items, err := uc.ListPending(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 2)
}
