package payments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stratodeck/copytrade/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/stratodeck/copytrade/services/payments PaymentUC

// Sentinel errors surfaced to the HTTP layer.
var (
	ErrNotFound   = errors.New("transaction not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")
)

// PaymentUC is the transaction lifecycle orchestrator: it sequences store
// calls, side effects, and event publication for every payment transition.
type PaymentUC interface {
	// CreateTransaction records a new pending payment for the user.
	CreateTransaction(ctx context.Context, userID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error)

	// AttachProof stores the receipt and account credentials, moves the
	// transaction to in-process, and materializes the running strategy
	// instance when a strategy deployment is being paid for.
	AttachProof(ctx context.Context, userID, transactionID uuid.UUID, req models.AttachProofRequest) (*models.Transaction, error)

	// Approve completes a payment and credits the wallet exactly once.
	// amount overrides the credited amount for partial credit; empty means
	// the transaction's stored amount.
	Approve(ctx context.Context, adminID, transactionID uuid.UUID, amount string) (*models.DecisionResult, error)

	// Reject fails a payment and removes any running strategy instance
	// materialized from it.
	Reject(ctx context.Context, adminID, transactionID uuid.UUID, reason string) (*models.DecisionResult, error)

	// SendMessage records an out-of-band admin note on a non-terminal
	// transaction.
	SendMessage(ctx context.Context, adminID, transactionID uuid.UUID, message string) (*models.Transaction, error)

	// ListPending returns transactions awaiting an admin decision, hydrated
	// for the review screen.
	ListPending(ctx context.Context) ([]models.PendingPayment, error)

	// GetTransaction returns one transaction.
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)

	// ListUserTransactions returns the user's payment history.
	ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
}

// StrategyRegistry is the slice of the running-strategy registry the payment
// lifecycle drives: instances are ensured on proof submission and removed on
// rejection.
type StrategyRegistry interface {
	Ensure(ctx context.Context, rs *models.RunningStrategy) (bool, error)
	Remove(ctx context.Context, userID, strategyID uuid.UUID) error
}
