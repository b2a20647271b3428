package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/stratodeck/copytrade/internal/pkg/middleware"
	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/services/strategies/handler/http"
)

// Handler coordinates the protocol handlers for the strategies service
type Handler struct {
	strategyHandler *http.StrategyHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(strategyHandler *http.StrategyHandler, cfg *models.Config) *Handler {
	return &Handler{
		strategyHandler: strategyHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the strategy routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("/strategies", middleware.JWTAuthMiddleware(h.cfg.JWT))

	protected.GET("", h.strategyHandler.ListCatalog)
	protected.GET("/mine", h.strategyHandler.ListOwn)
	protected.POST("/running/:id/modifications", h.strategyHandler.RequestModification)

	admin := protected.Group("/running", middleware.AdminOnly())
	admin.GET("", h.strategyHandler.ListRunning)
	admin.PUT("/:id/status", h.strategyHandler.SetAdminStatus)
}
