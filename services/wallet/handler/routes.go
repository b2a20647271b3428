package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/stratodeck/copytrade/internal/pkg/middleware"
	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/services/wallet/handler/http"
)

// Handler coordinates the protocol handlers for the wallet service
type Handler struct {
	walletHandler *http.WalletHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(walletHandler *http.WalletHandler, cfg *models.Config) *Handler {
	return &Handler{
		walletHandler: walletHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the wallet routes. Transaction routes under
// /wallet/transactions are owned by the payments service.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("/wallet", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("", h.walletHandler.GetBalance)
}
