package handler

import (
	"github.com/gin-gonic/gin"

	"bookkeeper/internal/service"
)

// ForecastHandler handles the cash-flow forecast endpoints.
type ForecastHandler struct {
	forecastService service.ForecastService
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(forecastService service.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// ListUpcoming handles GET /api/v1/forecasts
func (h *ForecastHandler) ListUpcoming(c *gin.Context) {
	forecasts, err := h.forecastService.ListUpcoming(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, forecasts)
}
