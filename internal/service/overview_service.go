package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

// OverviewService assembles the reconciliation workspace snapshot.
type OverviewService interface {
	Snapshot(ctx context.Context) (*domain.Overview, error)
}

type overviewService struct {
	suggestionRepo port.SuggestionRepository
	riskFlagRepo   port.RiskFlagRepository
	forecastRepo   port.ForecastRepository
	statsRepo      port.StatsRepository
	enrichment     EnrichmentService
	horizonDays    int
}

// NewOverviewService creates a new OverviewService implementation.
func NewOverviewService(
	suggestionRepo port.SuggestionRepository,
	riskFlagRepo port.RiskFlagRepository,
	forecastRepo port.ForecastRepository,
	statsRepo port.StatsRepository,
	enrichment EnrichmentService,
	horizonDays int,
) OverviewService {
	return &overviewService{
		suggestionRepo: suggestionRepo,
		riskFlagRepo:   riskFlagRepo,
		forecastRepo:   forecastRepo,
		statsRepo:      statsRepo,
		enrichment:     enrichment,
		horizonDays:    horizonDays,
	}
}

// Snapshot fetches pending suggestions, open risk flags, the forecast window,
// and ledger counts concurrently, then enriches suggestions and derives stats.
// Any fetch failure fails the whole snapshot; a partially stale view is worse
// than an error the caller can retry.
func (s *overviewService) Snapshot(ctx context.Context) (*domain.Overview, error) {
	var (
		suggestions []domain.AISuggestion
		riskFlags   []domain.RiskFlag
		forecasts   []domain.CashFlowForecast
		counts      *domain.LedgerCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		suggestions, err = s.suggestionRepo.ListByStatus(gctx, domain.SuggestionStatusPending)
		return err
	})
	g.Go(func() error {
		var err error
		riskFlags, err = s.riskFlagRepo.ListOpen(gctx)
		return err
	})
	g.Go(func() error {
		now := time.Now()
		var err error
		forecasts, err = s.forecastRepo.ListBetween(gctx, now, now.AddDate(0, 0, s.horizonDays))
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.statsRepo.GetLedgerCounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("overviewService.Snapshot: %w", err)
	}

	return &domain.Overview{
		Suggestions: s.enrichment.Enrich(ctx, suggestions),
		RiskFlags:   riskFlags,
		Forecasts:   forecasts,
		Counts:      *counts,
		Stats:       ComputeStats(*counts),
	}, nil
}
