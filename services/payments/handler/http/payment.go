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
	"github.com/stratodeck/copytrade/services/payments"
)

// PaymentHandler handles HTTP requests for payment lifecycle operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

type decisionRequest struct {
	Amount string `json:"amount,omitempty"`
	Reason string `json:"rejectionReason,omitempty"`
}

type messageRequest struct {
	Message string `json:"message"`
}

// CreateTransaction handles payment submission requests
func (h *PaymentHandler) CreateTransaction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	t, err := h.paymentUC.CreateTransaction(c.Request().Context(), userID, req)
	if err != nil {
		if errors.Is(err, payments.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create transaction",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create transaction")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", t)
}

// AttachProof handles receipt and credential submission for a pending payment
func (h *PaymentHandler) AttachProof(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.AttachProofRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	t, err := h.paymentUC.AttachProof(c.Request().Context(), userID, transactionID, req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, payments.ErrNotFound):
			return utils.NotFoundResponse(c, "Transaction not found")
		case errors.Is(err, payments.ErrForbidden):
			return utils.ForbiddenResponse(c, "Transaction belongs to another user")
		}
		logger.Error("Failed to attach payment proof",
			logger.String("transaction_id", transactionID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to attach payment proof")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment proof attached successfully", t)
}

// ListUserTransactions handles the user's payment history requests
func (h *PaymentHandler) ListUserTransactions(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	items, err := h.paymentUC.ListUserTransactions(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list user transactions",
			logger.String("user_id", userID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", items)
}

// GetTransaction handles single transaction retrieval
func (h *PaymentHandler) GetTransaction(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	t, err := h.paymentUC.GetTransaction(c.Request().Context(), transactionID)
	if err != nil {
		if errors.Is(err, payments.ErrNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		logger.Error("Failed to get transaction",
			logger.String("transaction_id", transactionID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to get transaction")
	}

	role, _ := c.Get("user_role").(string)
	if t.UserID != userID && role != models.RoleAdmin {
		return utils.ForbiddenResponse(c, "Transaction belongs to another user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", t)
}

// ListPending handles the admin review queue requests
func (h *PaymentHandler) ListPending(c echo.Context) error {
	items, err := h.paymentUC.ListPending(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list pending payments", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list pending payments")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pending payments retrieved successfully", items)
}

// Approve handles admin approval of a payment
func (h *PaymentHandler) Approve(c echo.Context) error {
	adminID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.paymentUC.Approve(c.Request().Context(), adminID, transactionID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, payments.ErrNotFound):
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		logger.Error("Failed to approve transaction",
			logger.String("transaction_id", transactionID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to approve transaction")
	}

	message := "Transaction approved successfully"
	if result.AlreadyDecided {
		message = "Transaction already decided"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, result)
}

// Reject handles admin rejection of a payment
func (h *PaymentHandler) Reject(c echo.Context) error {
	adminID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.paymentUC.Reject(c.Request().Context(), adminID, transactionID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, payments.ErrNotFound):
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		logger.Error("Failed to reject transaction",
			logger.String("transaction_id", transactionID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to reject transaction")
	}

	message := "Transaction rejected successfully"
	if result.AlreadyDecided {
		message = "Transaction already decided"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, result)
}

// SendMessage handles admin out-of-band notes on a payment
func (h *PaymentHandler) SendMessage(c echo.Context) error {
	adminID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing authentication")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	t, err := h.paymentUC.SendMessage(c.Request().Context(), adminID, transactionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, payments.ErrNotFound):
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		logger.Error("Failed to send admin message",
			logger.String("transaction_id", transactionID.String()),
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to send admin message")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Message recorded successfully", t)
}
