package wallet

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/stratodeck/copytrade/services/wallet WalletRepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stratodeck/copytrade/internal/pkg/models"
)

// WalletRepo defines the persistence operations behind the wallet ledger.
// Implemented by the shared record store.
type WalletRepo interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreditWallet(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.User, error)
}
