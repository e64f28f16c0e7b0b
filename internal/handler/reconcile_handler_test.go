package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/handler"
	"bookkeeper/internal/port"
	"bookkeeper/internal/service"
	"bookkeeper/mocks"
)

func newReconcileHandler() (*handler.ReconcileHandler, *mocks.MockReconcileService) {
	mockSvc := new(mocks.MockReconcileService)
	return handler.NewReconcileHandler(mockSvc), mockSvc
}

func TestReconcileHandler_Run_DefaultsToAllScope(t *testing.T) {
	h, mockSvc := newReconcileHandler()

	mockSvc.On("RunReconciliation", mock.Anything, domain.ReconcileScopeAll).
		Return(&service.ReconcileRunResult{Results: &port.ReconcileResults{AutoMatched: 2}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/reconcile", http.NoBody)

	h.Run(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReconcileHandler_Run_ExplicitScope(t *testing.T) {
	h, mockSvc := newReconcileHandler()

	mockSvc.On("RunReconciliation", mock.Anything, domain.ReconcileScopePayable).
		Return(&service.ReconcileRunResult{Results: &port.ReconcileResults{}}, nil)

	body := bytes.NewBufferString(`{"scope": "payable"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/reconcile", body)
	c.Request.Header.Set("Content-Type", "application/json")

	h.Run(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReconcileHandler_Run_AlreadyRunning(t *testing.T) {
	h, mockSvc := newReconcileHandler()

	mockSvc.On("RunReconciliation", mock.Anything, mock.Anything).
		Return(nil, domain.ErrReconciliationInProgress)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/reconcile", http.NoBody)

	h.Run(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RECONCILIATION_IN_PROGRESS", resp.Error.Code)
}

func TestReconcileHandler_Run_GatewayDown(t *testing.T) {
	h, mockSvc := newReconcileHandler()

	mockSvc.On("RunReconciliation", mock.Anything, mock.Anything).
		Return(nil, domain.ErrMatcherUnavailable)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/reconcile", http.NoBody)

	h.Run(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestReconcileHandler_DetectGaps_PassesWindow(t *testing.T) {
	h, mockSvc := newReconcileHandler()

	mockSvc.On("DetectGaps", mock.Anything, &service.DetectGapsInput{
		StartDate: "2026-01-01",
		EndDate:   "2026-02-01",
	}).Return(&service.GapScanResult{Results: &port.GapResults{RiskScore: 10}}, nil)

	body := bytes.NewBufferString(`{"start_date": "2026-01-01", "end_date": "2026-02-01"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/reconcile/gaps", body)
	c.Request.Header.Set("Content-Type", "application/json")

	h.DetectGaps(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestReconcileHandler_SmartMatch(t *testing.T) {
	h, mockSvc := newReconcileHandler()

	mockSvc.On("SmartMatch", mock.Anything).
		Return(&service.SmartMatchResult{Results: &port.SmartMatchResults{AutoMatched: 1}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/reconcile/smart-match", http.NoBody)

	h.SmartMatch(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
