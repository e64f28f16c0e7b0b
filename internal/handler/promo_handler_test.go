package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gin-gonic/gin"

	"bookkeeper/internal/handler"
	"bookkeeper/internal/promo"
	"bookkeeper/internal/service"
	"bookkeeper/mocks"
)

func newPromoHandler() (*handler.PromoHandler, *mocks.MockPromoService) {
	mockSvc := new(mocks.MockPromoService)
	return handler.NewPromoHandler(mockSvc), mockSvc
}

func TestPromoHandler_Validate_Valid(t *testing.T) {
	h, mockSvc := newPromoHandler()

	mockSvc.On("Validate", mock.Anything, mock.MatchedBy(func(in *service.ValidatePromoInput) bool {
		return in.Code == "SAVE20" && in.OrderTotal.Equal(decimal.NewFromInt(1000))
	})).Return(&promo.Result{
		Valid:          true,
		DiscountAmount: decimal.NewFromInt(200),
	}, nil)

	body := bytes.NewBufferString(`{"code": "SAVE20", "order_total": 1000}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/promo/validate", body)
	c.Request.Header.Set("Content-Type", "application/json")

	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool         `json:"success"`
		Data    promo.Result `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.Valid)
	assert.True(t, resp.Data.DiscountAmount.Equal(decimal.NewFromInt(200)))
}

func TestPromoHandler_Validate_InvalidCodeIs200(t *testing.T) {
	h, mockSvc := newPromoHandler()

	mockSvc.On("Validate", mock.Anything, mock.Anything).Return(&promo.Result{
		Valid: false,
		Error: "Promo code has reached maximum uses",
	}, nil)

	body := bytes.NewBufferString(`{"code": "CAPPED", "order_total": 1000}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/promo/validate", body)
	c.Request.Header.Set("Content-Type", "application/json")

	h.Validate(c)

	// An inapplicable code is a typed result, not an HTTP error.
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data promo.Result `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Valid)
	assert.Equal(t, "Promo code has reached maximum uses", resp.Data.Error)
}

func TestPromoHandler_Redeem_MalformedBody(t *testing.T) {
	h, mockSvc := newPromoHandler()

	body := bytes.NewBufferString(`{"order_total": "not a number"`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/promo/redeem", body)
	c.Request.Header.Set("Content-Type", "application/json")

	h.Redeem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Redeem")
}
