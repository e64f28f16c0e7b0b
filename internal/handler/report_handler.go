package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookkeeper/internal/service"
)

// ReportHandler handles the reporting endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func agingAsOf(c *gin.Context) (time.Time, bool) {
	raw := c.Query("as_of")
	if raw == "" {
		return time.Now(), true
	}
	asOf, err := time.Parse("2006-01-02", raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "as_of must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return asOf, true
}

// GetAging handles GET /api/v1/reports/aging
func (h *ReportHandler) GetAging(c *gin.Context) {
	asOf, ok := agingAsOf(c)
	if !ok {
		return
	}
	rpt, err := h.reportService.Aging(c.Request.Context(), asOf)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rpt)
}

// ExportAging handles GET /api/v1/reports/aging/export
func (h *ReportHandler) ExportAging(c *gin.Context) {
	asOf, ok := agingAsOf(c)
	if !ok {
		return
	}
	data, err := h.reportService.AgingWorkbook(c.Request.Context(), asOf)
	if err != nil {
		HandleError(c, err)
		return
	}
	filename := "aging-" + asOf.Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
