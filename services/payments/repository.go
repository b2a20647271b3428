package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/internal/pkg/recordstore"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/stratodeck/copytrade/services/payments PaymentRepo,PendingCache

// PaymentRepo is the persistence surface the lifecycle needs. It is
// implemented by the dual-backend record store; callers cannot assume which
// backend holds a given record.
type PaymentRepo interface {
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	ListPendingPayments(ctx context.Context) ([]models.PendingPayment, error)
	AttachProof(ctx context.Context, id uuid.UUID, proof models.AttachProofRequest) (*models.Transaction, bool, error)
	SetAdminMessage(ctx context.Context, id uuid.UUID, adminID uuid.UUID, message string) (*models.Transaction, bool, error)
	DecideTransaction(ctx context.Context, id uuid.UUID, d recordstore.Decision) (*models.Transaction, *models.User, bool, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// PendingCache caches the hydrated pending-payments list between admin
// polls. Implementations must be safe to call when the cache backend is
// down; a miss is always acceptable.
type PendingCache interface {
	Get(ctx context.Context) ([]models.PendingPayment, bool)
	Set(ctx context.Context, items []models.PendingPayment)
	Invalidate(ctx context.Context)
}
