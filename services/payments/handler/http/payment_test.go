package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/services/payments"
	"github.com/stratodeck/copytrade/services/payments/mocks"
)

func newAuthedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID uuid.UUID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", role)
	return c
}

func TestCreateTransaction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	requestBody := `{
		"amount": "99.90",
		"currency": "USD",
		"payment_method": "bank-transfer"
	}`
	req := httptest.NewRequest(http.MethodPost, "/wallet/transactions", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, userID, models.RoleUser)

	mockUC.EXPECT().
		CreateTransaction(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, r models.CreateTransactionRequest) (*models.Transaction, error) {
			assert.Equal(t, "99.90", r.Amount)
			assert.Equal(t, "bank-transfer", r.PaymentMethod)
			return &models.Transaction{
				ID:     uuid.New(),
				UserID: userID,
				Amount: decimal.RequireFromString("99.90"),
				Status: models.TransactionPending,
			}, nil
		})

	err := h.CreateTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Transaction created successfully", response["message"])
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/wallet/transactions", strings.NewReader(`{"amount":"-1","payment_method":"card"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, userID, models.RoleUser)

	mockUC.EXPECT().
		CreateTransaction(gomock.Any(), userID, gomock.Any()).
		Return(nil, payments.ErrValidation)

	err := h.CreateTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttachProof_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	txID := uuid.New()
	requestBody := `{
		"receipt_reference": "receipt-001",
		"account_id": "10023",
		"account_password": "secret",
		"account_server": "Broker-Live01"
	}`
	req := httptest.NewRequest(http.MethodPut, "/wallet/transactions/"+txID.String()+"/proof", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, userID, models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		AttachProof(gomock.Any(), userID, txID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, r models.AttachProofRequest) (*models.Transaction, error) {
			assert.Equal(t, "receipt-001", r.ReceiptReference)
			assert.Equal(t, "10023", r.AccountID)
			return &models.Transaction{
				ID:     txID,
				UserID: userID,
				Status: models.TransactionInProcess,
			}, nil
		})

	err := h.AttachProof(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttachProof_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	txID := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/wallet/transactions/"+txID.String()+"/proof", strings.NewReader(`{"receipt_reference":"r"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, uuid.New(), models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		AttachProof(gomock.Any(), gomock.Any(), txID, gomock.Any()).
		Return(nil, payments.ErrForbidden)

	err := h.AttachProof(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestApprove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	adminID := uuid.New()
	txID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/"+txID.String()+"/approve", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, adminID, models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		Approve(gomock.Any(), adminID, txID, "").
		Return(&models.DecisionResult{
			Transaction: &models.Transaction{ID: txID, Status: models.TransactionCompleted},
		}, nil)

	err := h.Approve(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Transaction approved successfully", response["message"])
}

func TestApprove_AlreadyDecided(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	adminID := uuid.New()
	txID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/"+txID.String()+"/approve", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, adminID, models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		Approve(gomock.Any(), adminID, txID, "").
		Return(&models.DecisionResult{
			Transaction:    &models.Transaction{ID: txID, Status: models.TransactionFailed},
			AlreadyDecided: true,
		}, nil)

	err := h.Approve(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Transaction already decided", response["message"])
}

func TestApprove_InvalidTransactionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/not-a-uuid/approve", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, uuid.New(), models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Approve(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReject_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	adminID := uuid.New()
	txID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/"+txID.String()+"/reject", strings.NewReader(`{"rejectionReason":"receipt unreadable"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, adminID, models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		Reject(gomock.Any(), adminID, txID, "receipt unreadable").
		Return(&models.DecisionResult{
			Transaction: &models.Transaction{ID: txID, Status: models.TransactionFailed},
		}, nil)

	err := h.Reject(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReject_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	txID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/"+txID.String()+"/reject", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, uuid.New(), models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		Reject(gomock.Any(), gomock.Any(), txID, "").
		Return(nil, payments.ErrNotFound)

	err := h.Reject(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	adminID := uuid.New()
	txID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/"+txID.String()+"/message", strings.NewReader(`{"message":"please resend"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, adminID, models.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		SendMessage(gomock.Any(), adminID, txID, "please resend").
		Return(&models.Transaction{ID: txID, AdminMessage: "please resend"}, nil)

	err := h.SendMessage(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListPending_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/payments/pending", nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, uuid.New(), models.RoleAdmin)

	mockUC.EXPECT().
		ListPending(gomock.Any()).
		Return([]models.PendingPayment{
			{UserEmail: "trader@example.com", StrategyName: "Momentum Alpha"},
		}, nil)

	err := h.ListPending(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListPending_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/payments/pending", nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, uuid.New(), models.RoleAdmin)

	mockUC.EXPECT().
		ListPending(gomock.Any()).
		Return(nil, errors.New("backend down"))

	err := h.ListPending(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetTransaction_OwnerCanRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	txID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/wallet/transactions/"+txID.String(), nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, userID, models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), txID).
		Return(&models.Transaction{ID: txID, UserID: userID}, nil)

	err := h.GetTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTransaction_StrangerIsForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	txID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/wallet/transactions/"+txID.String(), nil)
	rec := httptest.NewRecorder()
	c := newAuthedContext(e, req, rec, uuid.New(), models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), txID).
		Return(&models.Transaction{ID: txID, UserID: uuid.New()}, nil)

	err := h.GetTransaction(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
