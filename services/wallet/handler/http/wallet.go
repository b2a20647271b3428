package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/middleware"
	"github.com/stratodeck/copytrade/internal/utils"
	"github.com/stratodeck/copytrade/services/wallet"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{
		walletUC: walletUC,
	}
}

// GetBalance handles wallet balance requests
func (h *WalletHandler) GetBalance(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	summary, err := h.walletUC.Balance(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to get wallet balance",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to get wallet balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Wallet balance retrieved successfully", summary)
}
