package router

import (
	"github.com/gin-gonic/gin"

	"bookkeeper/internal/config"
	"bookkeeper/internal/handler"
	"bookkeeper/internal/middleware"
)

// Handlers aggregates all HTTP handlers for route registration.
type Handlers struct {
	Health     *handler.HealthHandler
	Overview   *handler.OverviewHandler
	Suggestion *handler.SuggestionHandler
	Reconcile  *handler.ReconcileHandler
	RiskFlag   *handler.RiskFlagHandler
	Forecast   *handler.ForecastHandler
	Promo      *handler.PromoHandler
	Report     *handler.ReportHandler
}

// New builds the gin engine with all middleware and routes registered.
func New(cfg *config.Config, h *Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(&cfg.CORS))

	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/overview", h.Overview.GetOverview)

		v1.GET("/suggestions", h.Suggestion.ListPending)
		v1.GET("/suggestions/export", h.Suggestion.ExportCSV)
		v1.POST("/suggestions/:id/approve", h.Suggestion.Approve)
		v1.POST("/suggestions/:id/reject", h.Suggestion.Reject)

		v1.POST("/reconcile", h.Reconcile.Run)
		v1.POST("/reconcile/gaps", h.Reconcile.DetectGaps)
		v1.POST("/reconcile/smart-match", h.Reconcile.SmartMatch)

		v1.GET("/risk-flags", h.RiskFlag.ListOpen)
		v1.POST("/risk-flags/:id/resolve", h.RiskFlag.Resolve)

		v1.GET("/forecasts", h.Forecast.ListUpcoming)

		v1.POST("/promo/validate", h.Promo.Validate)
		v1.POST("/promo/redeem", h.Promo.Redeem)

		v1.GET("/reports/aging", h.Report.GetAging)
		v1.GET("/reports/aging/export", h.Report.ExportAging)
	}

	return r
}
