package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/middleware"
	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/internal/utils"
	"github.com/stratodeck/copytrade/services/strategies"
)

// StrategyHandler handles HTTP requests for the catalog and the running
// instance registry
type StrategyHandler struct {
	strategyUC strategies.StrategyUC
}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler(strategyUC strategies.StrategyUC) *StrategyHandler {
	return &StrategyHandler{
		strategyUC: strategyUC,
	}
}

type adminStatusRequest struct {
	AdminStatus string `json:"adminStatus"`
}

// ListCatalog handles catalog listing requests
func (h *StrategyHandler) ListCatalog(c echo.Context) error {
	items, err := h.strategyUC.ListCatalog(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list strategies", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list strategies")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Strategies retrieved successfully", items)
}

// ListOwn handles the user's running instance requests
func (h *StrategyHandler) ListOwn(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	items, err := h.strategyUC.ListForUser(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list user running strategies",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list running strategies")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Running strategies retrieved successfully", items)
}

// ListRunning handles the admin view of all running instances
func (h *StrategyHandler) ListRunning(c echo.Context) error {
	items, err := h.strategyUC.ListRunning(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list running strategies", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list running strategies")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Running strategies retrieved successfully", items)
}

// SetAdminStatus handles admin connection-health updates on an instance
func (h *StrategyHandler) SetAdminStatus(c echo.Context) error {
	instanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid instance ID")
	}

	var req adminStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rs, err := h.strategyUC.SetAdminStatus(c.Request().Context(), instanceID, models.RunningStrategyAdminStatus(req.AdminStatus))
	if err != nil {
		switch {
		case errors.Is(err, strategies.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, strategies.ErrNotFound):
			return utils.NotFoundResponse(c, "Running strategy not found")
		}
		logger.Error("Failed to set admin status",
			logger.String("instance_id", instanceID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to set admin status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Admin status updated successfully", rs)
}

// RequestModification handles credential change requests from the owner
func (h *StrategyHandler) RequestModification(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	instanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid instance ID")
	}

	var req models.ModificationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	mod, err := h.strategyUC.ApplyModification(c.Request().Context(), userID, instanceID, req)
	if err != nil {
		switch {
		case errors.Is(err, strategies.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, strategies.ErrNotFound):
			return utils.NotFoundResponse(c, "Running strategy not found")
		case errors.Is(err, strategies.ErrForbidden):
			return utils.ForbiddenResponse(c, "Running strategy belongs to another user")
		}
		logger.Error("Failed to apply modification",
			logger.String("instance_id", instanceID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to apply modification")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Modification recorded successfully", mod)
}
