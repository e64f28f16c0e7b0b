package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/service"
)

// ReconcileHandler handles the matcher orchestration endpoints.
type ReconcileHandler struct {
	reconcileService service.ReconcileService
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(reconcileService service.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{reconcileService: reconcileService}
}

type reconcileRequest struct {
	Scope string `json:"scope"`
}

type detectGapsRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Run handles POST /api/v1/reconcile
func (h *ReconcileHandler) Run(c *gin.Context) {
	req := reconcileRequest{Scope: string(domain.ReconcileScopeAll)}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	result, err := h.reconcileService.RunReconciliation(c.Request.Context(), domain.ReconcileScope(req.Scope))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// DetectGaps handles POST /api/v1/reconcile/gaps
func (h *ReconcileHandler) DetectGaps(c *gin.Context) {
	var req detectGapsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	result, err := h.reconcileService.DetectGaps(c.Request.Context(), &service.DetectGapsInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// SmartMatch handles POST /api/v1/reconcile/smart-match
func (h *ReconcileHandler) SmartMatch(c *gin.Context) {
	result, err := h.reconcileService.SmartMatch(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
