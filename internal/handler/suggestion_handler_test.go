package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/handler"
	"bookkeeper/internal/service"
	"bookkeeper/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSuggestionHandler() (*handler.SuggestionHandler, *mocks.MockSuggestionService) {
	mockSvc := new(mocks.MockSuggestionService)
	return handler.NewSuggestionHandler(mockSvc), mockSvc
}

func TestSuggestionHandler_Approve_Success(t *testing.T) {
	h, mockSvc := newSuggestionHandler()

	id := uuid.New()
	mockSvc.On("Approve", mock.Anything, mock.MatchedBy(func(in *service.ApproveSuggestionInput) bool {
		return in.SuggestionID == id && in.ReviewedBy == "fatima"
	})).Return(&domain.Overview{}, nil)

	body := bytes.NewBufferString(`{"reviewed_by": "fatima"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/suggestions/"+id.String()+"/approve", body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestSuggestionHandler_Approve_EmptyBodyAllowed(t *testing.T) {
	h, mockSvc := newSuggestionHandler()

	id := uuid.New()
	mockSvc.On("Approve", mock.Anything, mock.Anything).Return(&domain.Overview{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/suggestions/"+id.String()+"/approve", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSuggestionHandler_Approve_InvalidID(t *testing.T) {
	h, mockSvc := newSuggestionHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/suggestions/nope/approve", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	h.Approve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Approve")
}

func TestSuggestionHandler_Approve_AlreadyResolved(t *testing.T) {
	h, mockSvc := newSuggestionHandler()

	id := uuid.New()
	mockSvc.On("Approve", mock.Anything, mock.Anything).Return(nil, domain.ErrSuggestionResolved)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/suggestions/"+id.String()+"/approve", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Approve(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SUGGESTION_RESOLVED", resp.Error.Code)
}

func TestSuggestionHandler_Reject_RaceLost(t *testing.T) {
	h, mockSvc := newSuggestionHandler()

	id := uuid.New()
	mockSvc.On("Reject", mock.Anything, mock.Anything).Return(nil, domain.ErrPaymentAlreadyMatched)

	body := bytes.NewBufferString(`{"reason": "wrong payment"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/suggestions/"+id.String()+"/reject", body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Reject(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSuggestionHandler_ExportCSV(t *testing.T) {
	h, mockSvc := newSuggestionHandler()

	mockSvc.On("ListPending", mock.Anything).Return([]domain.EnrichedSuggestion{{
		AISuggestion: domain.AISuggestion{
			ID:              uuid.New(),
			Status:          domain.SuggestionStatusPending,
			SourceType:      domain.SourceTypeBill,
			ConfidenceScore: 0.9,
		},
	}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/suggestions/export", http.NoBody)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "Suggestion ID")
	assert.Contains(t, w.Body.String(), "0.90")
}
