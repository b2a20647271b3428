package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/internal/pkg/recordstore"
	"github.com/stratodeck/copytrade/services/payments"
)

// PaymentUC implements the payments.PaymentUC interface
type PaymentUC struct {
	cfg      *models.Config
	repo     payments.PaymentRepo
	registry payments.StrategyRegistry
	gateway  payments.PaymentGW
	cache    payments.PendingCache
}

// NewPaymentUC creates a new payment lifecycle use case
func NewPaymentUC(
	cfg *models.Config,
	repo payments.PaymentRepo,
	registry payments.StrategyRegistry,
	gateway payments.PaymentGW,
	cache payments.PendingCache,
) *PaymentUC {
	return &PaymentUC{
		cfg:      cfg,
		repo:     repo,
		registry: registry,
		gateway:  gateway,
		cache:    cache,
	}
}

// CreateTransaction records a new pending payment for the user.
func (uc *PaymentUC) CreateTransaction(ctx context.Context, userID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount %q", payments.ErrValidation, req.Amount)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", payments.ErrValidation)
	}
	if req.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", payments.ErrValidation)
	}

	t := &models.Transaction{
		UserID:                userID,
		StrategyID:            req.StrategyID,
		Amount:                amount,
		Currency:              req.Currency,
		PaymentMethod:         req.PaymentMethod,
		ExternalTransactionID: req.ExternalTransactionID,
	}
	if t.Currency == "" {
		t.Currency = uc.cfg.Payments.DefaultCurrency
	}
	if req.PlanLevel != "" {
		plan := models.PlanLevel(req.PlanLevel)
		if !models.ValidPlanLevel(plan) {
			return nil, fmt.Errorf("%w: unknown plan level %q", payments.ErrValidation, req.PlanLevel)
		}
		t.PlanLevel = plan
	}
	if req.LocalAmount != "" {
		local, err := decimal.NewFromString(req.LocalAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid local amount %q", payments.ErrValidation, req.LocalAmount)
		}
		t.LocalAmount = local
	}
	if req.ConversionRate != "" {
		rate, err := decimal.NewFromString(req.ConversionRate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid conversion rate %q", payments.ErrValidation, req.ConversionRate)
		}
		t.ConversionRate = rate
	}

	if err := uc.repo.CreateTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.invalidatePending(ctx)
	return t, nil
}

// AttachProof stores the receipt and credentials and moves the transaction
// to in-process. When the payment targets a strategy deployment the running
// strategy instance is materialized here; Ensure is a no-op when one already
// exists for the (user, strategy) pair.
func (uc *PaymentUC) AttachProof(ctx context.Context, userID, transactionID uuid.UUID, req models.AttachProofRequest) (*models.Transaction, error) {
	if req.ReceiptReference == "" {
		return nil, fmt.Errorf("%w: receipt reference is required", payments.ErrValidation)
	}

	current, err := uc.getTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if current.UserID != userID {
		return nil, payments.ErrForbidden
	}

	t, changed, err := uc.repo.AttachProof(ctx, transactionID, req)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, payments.ErrNotFound
		}
		return nil, fmt.Errorf("failed to attach proof: %w", err)
	}

	if changed && t.StrategyID != nil {
		rs := &models.RunningStrategy{
			UserID:          t.UserID,
			StrategyID:      *t.StrategyID,
			TransactionID:   t.ID,
			Plan:            t.PlanLevel,
			Capital:         t.Amount,
			Platform:        t.Platform,
			AccountID:       t.AccountID,
			AccountPassword: t.AccountPassword,
			AccountServer:   t.AccountServer,
		}
		if _, err := uc.registry.Ensure(ctx, rs); err != nil {
			// the payment record is the source of truth; instance creation
			// is retried on the next proof submission
			logger.Error("failed to ensure running strategy",
				logger.String("transaction_id", t.ID.String()),
				logger.Err(err),
			)
		}
	}

	uc.invalidatePending(ctx)
	return t, nil
}

// Approve completes the payment and credits the wallet exactly once. A
// repeated approve (or an approve after reject) is an idempotent success
// that repeats no side effects.
func (uc *PaymentUC) Approve(ctx context.Context, adminID, transactionID uuid.UUID, amount string) (*models.DecisionResult, error) {
	current, err := uc.getTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	credit := current.Amount
	if amount != "" {
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid credit amount %q", payments.ErrValidation, amount)
		}
		if !parsed.IsPositive() {
			return nil, fmt.Errorf("%w: credit amount must be positive", payments.ErrValidation)
		}
		credit = parsed
	}

	t, user, decided, err := uc.repo.DecideTransaction(ctx, transactionID, recordstore.Decision{
		Status:       models.TransactionCompleted,
		AdminID:      adminID,
		CreditAmount: credit,
	})
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, payments.ErrNotFound
		}
		return nil, fmt.Errorf("failed to approve transaction: %w", err)
	}

	if !decided {
		logger.Info("approve on already-decided transaction, treating as no-op",
			logger.String("transaction_id", transactionID.String()),
			logger.String("status", string(t.Status)),
		)
		return &models.DecisionResult{Transaction: t, AlreadyDecided: true}, nil
	}

	if t.CreditPending {
		logger.Warn("transaction approved with wallet credit pending compensation",
			logger.String("transaction_id", t.ID.String()),
		)
	}

	uc.publishDecision(ctx, models.SubjectPaymentApproved, t, user, "")
	uc.invalidatePending(ctx)

	return &models.DecisionResult{Transaction: t, User: user}, nil
}

// Reject fails the payment and removes any running strategy instance
// materialized from it, so a failed payment never leaves a ghost deployment.
func (uc *PaymentUC) Reject(ctx context.Context, adminID, transactionID uuid.UUID, reason string) (*models.DecisionResult, error) {
	t, _, decided, err := uc.repo.DecideTransaction(ctx, transactionID, recordstore.Decision{
		Status:  models.TransactionFailed,
		AdminID: adminID,
		Reason:  reason,
	})
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, payments.ErrNotFound
		}
		return nil, fmt.Errorf("failed to reject transaction: %w", err)
	}

	if !decided {
		logger.Info("reject on already-decided transaction, treating as no-op",
			logger.String("transaction_id", transactionID.String()),
			logger.String("status", string(t.Status)),
		)
		return &models.DecisionResult{Transaction: t, AlreadyDecided: true}, nil
	}

	if t.StrategyID != nil {
		if err := uc.registry.Remove(ctx, t.UserID, *t.StrategyID); err != nil {
			logger.Error("failed to remove running strategy after rejection",
				logger.String("transaction_id", t.ID.String()),
				logger.Err(err),
			)
		}
	}

	uc.publishDecision(ctx, models.SubjectPaymentRejected, t, nil, reason)
	uc.invalidatePending(ctx)

	return &models.DecisionResult{Transaction: t}, nil
}

// SendMessage records an out-of-band admin note; the lifecycle status is
// unchanged. A message on a terminal transaction is a harmless no-op.
func (uc *PaymentUC) SendMessage(ctx context.Context, adminID, transactionID uuid.UUID, message string) (*models.Transaction, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: message must not be empty", payments.ErrValidation)
	}

	if _, err := uc.getTransaction(ctx, transactionID); err != nil {
		return nil, err
	}

	t, changed, err := uc.repo.SetAdminMessage(ctx, transactionID, adminID, message)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, payments.ErrNotFound
		}
		return nil, fmt.Errorf("failed to set admin message: %w", err)
	}

	if changed && uc.gateway != nil {
		event := models.AdminMessageEvent{
			TransactionID: t.ID,
			UserID:        t.UserID,
			Message:       message,
			Timestamp:     time.Now().UTC(),
		}
		if user, err := uc.repo.GetUser(ctx, t.UserID); err == nil {
			event.UserEmail = user.Email
		}
		if err := uc.gateway.PublishAdminMessage(event); err != nil {
			logger.Warn("failed to publish admin message event",
				logger.String("transaction_id", t.ID.String()),
				logger.Err(err),
			)
		}
	}

	uc.invalidatePending(ctx)
	return t, nil
}

// ListPending returns the hydrated review queue, served from the cache
// between polls.
func (uc *PaymentUC) ListPending(ctx context.Context) ([]models.PendingPayment, error) {
	if uc.cache != nil {
		if items, ok := uc.cache.Get(ctx); ok {
			return items, nil
		}
	}

	items, err := uc.repo.ListPendingPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, items)
	}
	return items, nil
}

// GetTransaction returns a single transaction.
func (uc *PaymentUC) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return uc.getTransaction(ctx, id)
}

// ListUserTransactions returns the user's payment history.
func (uc *PaymentUC) ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	return uc.repo.ListTransactionsByUser(ctx, userID)
}

func (uc *PaymentUC) getTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	t, err := uc.repo.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, payments.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

func (uc *PaymentUC) publishDecision(ctx context.Context, subject string, t *models.Transaction, user *models.User, reason string) {
	if uc.gateway == nil {
		return
	}
	event := models.PaymentEvent{
		TransactionID: t.ID,
		UserID:        t.UserID,
		Status:        t.Status,
		Amount:        t.Amount,
		Reason:        reason,
		Timestamp:     time.Now().UTC(),
	}
	// the notify consumer delivers by email; without it the event is dropped
	if user != nil {
		event.UserEmail = user.Email
	} else if u, err := uc.repo.GetUser(ctx, t.UserID); err == nil {
		event.UserEmail = u.Email
	}
	if err := uc.gateway.PublishPaymentEvent(subject, event); err != nil {
		logger.Warn("failed to publish payment event",
			logger.String("subject", subject),
			logger.String("transaction_id", t.ID.String()),
			logger.Err(err),
		)
	}
}

func (uc *PaymentUC) invalidatePending(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
}
