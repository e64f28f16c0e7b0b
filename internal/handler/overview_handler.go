package handler

import (
	"github.com/gin-gonic/gin"

	"bookkeeper/internal/service"
)

// OverviewHandler handles the reconciliation workspace snapshot endpoint.
type OverviewHandler struct {
	overviewService service.OverviewService
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(overviewService service.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

// GetOverview handles GET /api/v1/overview
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	overview, err := h.overviewService.Snapshot(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, overview)
}
