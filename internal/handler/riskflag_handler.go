package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/service"
)

// RiskFlagHandler handles the anomaly triage endpoints.
type RiskFlagHandler struct {
	riskFlagService service.RiskFlagService
}

// NewRiskFlagHandler creates a new RiskFlagHandler.
func NewRiskFlagHandler(riskFlagService service.RiskFlagService) *RiskFlagHandler {
	return &RiskFlagHandler{riskFlagService: riskFlagService}
}

type resolveFlagRequest struct {
	Resolution string `json:"resolution" binding:"required"`
	Notes      string `json:"notes"`
}

// ListOpen handles GET /api/v1/risk-flags
func (h *RiskFlagHandler) ListOpen(c *gin.Context) {
	flags, err := h.riskFlagService.ListOpen(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, flags)
}

// Resolve handles POST /api/v1/risk-flags/:id/resolve
func (h *RiskFlagHandler) Resolve(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req resolveFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "resolution is required")
		return
	}

	result, err := h.riskFlagService.Resolve(c.Request.Context(), &service.ResolveRiskFlagInput{
		FlagID: id,
		Status: domain.RiskFlagStatus(req.Resolution),
		Notes:  req.Notes,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
