package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/stratodeck/copytrade/internal/pkg/middleware"
	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/services/payments/handler/http"
)

// Handler coordinates the protocol handlers for the payments service
type Handler struct {
	paymentHandler *http.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(paymentHandler *http.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the payment routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	// User-facing transaction routes live under the wallet surface
	txGroup := protected.Group("/wallet/transactions")
	txGroup.POST("", h.paymentHandler.CreateTransaction)
	txGroup.GET("", h.paymentHandler.ListUserTransactions)
	txGroup.GET("/:id", h.paymentHandler.GetTransaction)
	txGroup.PUT("/:id/proof", h.paymentHandler.AttachProof)

	// Admin review routes
	adminGroup := protected.Group("/payments", middleware.AdminOnly())
	adminGroup.GET("/pending", h.paymentHandler.ListPending)
	adminGroup.POST("/:id/approve", h.paymentHandler.Approve)
	adminGroup.POST("/:id/reject", h.paymentHandler.Reject)
	adminGroup.POST("/:id/message", h.paymentHandler.SendMessage)
}
