package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/services/strategies"
	"github.com/stratodeck/copytrade/services/strategies/mocks"
)

func TestListCatalog_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockStrategyUC(ctrl)
	h := NewStrategyHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/strategies", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().ListCatalog(gomock.Any()).Return([]models.Strategy{
		{ID: uuid.New(), Name: "Momentum Alpha", Active: true},
	}, nil)

	err := h.ListCatalog(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetAdminStatus_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockStrategyUC(ctrl)
	h := NewStrategyHandler(mockUC)

	e := echo.New()
	instanceID := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/strategies/running/"+instanceID.String()+"/status", strings.NewReader(`{"adminStatus":"running"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(instanceID.String())

	mockUC.EXPECT().
		SetAdminStatus(gomock.Any(), instanceID, models.AdminStatusRunning).
		Return(&models.RunningStrategy{ID: instanceID, AdminStatus: models.AdminStatusRunning}, nil)

	err := h.SetAdminStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetAdminStatus_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockStrategyUC(ctrl)
	h := NewStrategyHandler(mockUC)

	e := echo.New()
	instanceID := uuid.New()
	req := httptest.NewRequest(http.MethodPut, "/strategies/running/"+instanceID.String()+"/status", strings.NewReader(`{"adminStatus":"imaginary"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(instanceID.String())

	mockUC.EXPECT().
		SetAdminStatus(gomock.Any(), instanceID, models.RunningStrategyAdminStatus("imaginary")).
		Return(nil, strategies.ErrValidation)

	err := h.SetAdminStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestModification_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockStrategyUC(ctrl)
	h := NewStrategyHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	instanceID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/strategies/running/"+instanceID.String()+"/modifications", strings.NewReader(`{"account_password":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(instanceID.String())

	mockUC.EXPECT().
		ApplyModification(gomock.Any(), userID, instanceID, gomock.Any()).
		Return(nil, strategies.ErrForbidden)

	err := h.RequestModification(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequestModification_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockStrategyUC(ctrl)
	h := NewStrategyHandler(mockUC)

	e := echo.New()
	userID := uuid.New()
	instanceID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/strategies/running/"+instanceID.String()+"/modifications", strings.NewReader(`{"account_password":"new-secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues(instanceID.String())

	mockUC.EXPECT().
		ApplyModification(gomock.Any(), userID, instanceID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, r models.ModificationRequest) (*models.RunningStrategyModification, error) {
			assert.Equal(t, "new-secret", r.AccountPassword)
			return &models.RunningStrategyModification{
				RunningStrategyID: instanceID,
				Status:            models.ModificationApplied,
			}, nil
		})

	err := h.RequestModification(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
