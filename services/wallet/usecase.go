package wallet

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/stratodeck/copytrade/services/wallet WalletUC

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stratodeck/copytrade/internal/pkg/models"
)

// ErrNotFound is returned when the wallet owner does not exist.
var ErrNotFound = errors.New("user not found")

// ErrValidation is returned for rejected input.
var ErrValidation = errors.New("validation failed")

// WalletUC defines wallet balance operations.
type WalletUC interface {
	// Balance returns the user's current wallet balance.
	Balance(ctx context.Context, userID uuid.UUID) (*WalletSummary, error)

	// Credit atomically adds a positive amount to the user's balance and
	// returns the updated user record.
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.User, error)
}

// WalletSummary is the balance view returned to the wallet owner.
type WalletSummary struct {
	UserID        uuid.UUID       `json:"user_id"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
}
