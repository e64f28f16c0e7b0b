package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bookkeeper/internal/service"
)

// PromoHandler handles the promo code endpoints.
type PromoHandler struct {
	promoService service.PromoService
}

// NewPromoHandler creates a new PromoHandler.
func NewPromoHandler(promoService service.PromoService) *PromoHandler {
	return &PromoHandler{promoService: promoService}
}

type promoRequest struct {
	Code             string          `json:"code"`
	OrderTotal       decimal.Decimal `json:"order_total"`
	PlanCode         string          `json:"plan_code"`
	JurisdictionCode string          `json:"jurisdiction_code"`
}

func (r *promoRequest) toInput() *service.ValidatePromoInput {
	return &service.ValidatePromoInput{
		Code:             r.Code,
		OrderTotal:       r.OrderTotal,
		PlanCode:         r.PlanCode,
		JurisdictionCode: r.JurisdictionCode,
	}
}

// Validate handles POST /api/v1/promo/validate
func (h *PromoHandler) Validate(c *gin.Context) {
	var req promoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	result, err := h.promoService.Validate(c.Request.Context(), req.toInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Redeem handles POST /api/v1/promo/redeem
func (h *PromoHandler) Redeem(c *gin.Context) {
	var req promoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	result, err := h.promoService.Redeem(c.Request.Context(), req.toInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
