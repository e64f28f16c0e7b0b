package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bookkeeper/internal/config"
	"bookkeeper/internal/handler"
	"bookkeeper/internal/matcher/gateway"
	"bookkeeper/internal/repository/postgres"
	"bookkeeper/internal/router"
	"bookkeeper/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	billRepo := postgres.NewBillRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	suggestionRepo := postgres.NewSuggestionRepo(db)
	riskFlagRepo := postgres.NewRiskFlagRepo(db)
	forecastRepo := postgres.NewForecastRepo(db)
	feedbackRepo := postgres.NewFeedbackRepo(db)
	statsRepo := postgres.NewStatsRepo(db)
	reportRepo := postgres.NewReportRepo(db)
	promoRepo := postgres.NewPromoConfigRepo(db)
	locker := postgres.NewAdvisoryLocker(db)

	// Initialize the reconciliation gateway client
	matcher := gateway.NewClient(&cfg.Matcher)

	// Initialize services
	enrichmentSvc := service.NewEnrichmentService(billRepo, invoiceRepo, paymentRepo)
	overviewSvc := service.NewOverviewService(suggestionRepo, riskFlagRepo, forecastRepo, statsRepo, enrichmentSvc, cfg.Forecast.HorizonDays)
	suggestionSvc := service.NewSuggestionService(suggestionRepo, enrichmentSvc, overviewSvc)
	reconcileSvc := service.NewReconcileService(matcher, locker, billRepo, invoiceRepo, paymentRepo, feedbackRepo, overviewSvc, cfg.Matcher, cfg.Gaps)
	riskFlagSvc := service.NewRiskFlagService(riskFlagRepo, overviewSvc)
	forecastSvc := service.NewForecastService(forecastRepo, cfg.Forecast.HorizonDays)
	promoSvc := service.NewPromoService(promoRepo, cfg.Promo)
	reportSvc := service.NewReportService(reportRepo)

	// Initialize handlers
	h := &router.Handlers{
		Health:     handler.NewHealthHandler(db),
		Overview:   handler.NewOverviewHandler(overviewSvc),
		Suggestion: handler.NewSuggestionHandler(suggestionSvc),
		Reconcile:  handler.NewReconcileHandler(reconcileSvc),
		RiskFlag:   handler.NewRiskFlagHandler(riskFlagSvc),
		Forecast:   handler.NewForecastHandler(forecastSvc),
		Promo:      handler.NewPromoHandler(promoSvc),
		Report:     handler.NewReportHandler(reportSvc),
	}

	r := router.New(cfg, h)

	scheduler := service.NewScheduler(reconcileSvc, cfg.Schedule)
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
