package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/internal/pkg/recordstore"
	"github.com/stratodeck/copytrade/services/wallet"
)

// WalletUC implements the wallet.WalletUC interface
type WalletUC struct {
	repo wallet.WalletRepo
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(repo wallet.WalletRepo) *WalletUC {
	return &WalletUC{
		repo: repo,
	}
}

// Balance returns the user's current wallet balance.
func (uc *WalletUC) Balance(ctx context.Context, userID uuid.UUID) (*wallet.WalletSummary, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, wallet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &wallet.WalletSummary{
		UserID:        user.ID,
		WalletBalance: user.WalletBalance,
	}, nil
}

// Credit atomically adds a positive amount to the user's balance.
func (uc *WalletUC) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.User, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: credit amount must be positive", wallet.ErrValidation)
	}

	user, err := uc.repo.CreditWallet(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return nil, wallet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to credit wallet: %w", err)
	}
	return user, nil
}
