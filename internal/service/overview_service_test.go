package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/service"
	"bookkeeper/mocks"
)

type overviewFixture struct {
	svc            service.OverviewService
	suggestionRepo *mocks.MockSuggestionRepo
	riskFlagRepo   *mocks.MockRiskFlagRepo
	forecastRepo   *mocks.MockForecastRepo
	statsRepo      *mocks.MockStatsRepo
	enrichment     *mocks.MockEnrichmentService
}

func newOverviewFixture() *overviewFixture {
	f := &overviewFixture{
		suggestionRepo: new(mocks.MockSuggestionRepo),
		riskFlagRepo:   new(mocks.MockRiskFlagRepo),
		forecastRepo:   new(mocks.MockForecastRepo),
		statsRepo:      new(mocks.MockStatsRepo),
		enrichment:     new(mocks.MockEnrichmentService),
	}
	f.svc = service.NewOverviewService(f.suggestionRepo, f.riskFlagRepo, f.forecastRepo, f.statsRepo, f.enrichment, 30)
	return f
}

func TestOverviewSnapshot_AssemblesAllSections(t *testing.T) {
	f := newOverviewFixture()

	pending := []domain.AISuggestion{{ID: uuid.New(), Status: domain.SuggestionStatusPending}}
	enriched := []domain.EnrichedSuggestion{{AISuggestion: pending[0]}}
	flags := []domain.RiskFlag{{ID: uuid.New(), Status: domain.RiskFlagStatusOpen}}
	forecasts := []domain.CashFlowForecast{{ID: uuid.New()}}
	counts := &domain.LedgerCounts{TotalBills: 4, PaidBills: 2, OpenRiskFlags: 1}

	f.suggestionRepo.On("ListByStatus", mock.Anything, domain.SuggestionStatusPending).Return(pending, nil)
	f.riskFlagRepo.On("ListOpen", mock.Anything).Return(flags, nil)
	f.forecastRepo.On("ListBetween", mock.Anything, mock.Anything, mock.Anything).Return(forecasts, nil)
	f.statsRepo.On("GetLedgerCounts", mock.Anything).Return(counts, nil)
	f.enrichment.On("Enrich", mock.Anything, pending).Return(enriched)

	overview, err := f.svc.Snapshot(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, enriched, overview.Suggestions)
	assert.Equal(t, flags, overview.RiskFlags)
	assert.Equal(t, forecasts, overview.Forecasts)
	assert.Equal(t, *counts, overview.Counts)
	assert.Equal(t, 2, overview.Stats.ReconciledCount)
	assert.Equal(t, 90.0, overview.Stats.RiskScore)
}

func TestOverviewSnapshot_AnyFetchFailureFailsSnapshot(t *testing.T) {
	f := newOverviewFixture()

	f.suggestionRepo.On("ListByStatus", mock.Anything, mock.Anything).Return([]domain.AISuggestion{}, nil).Maybe()
	f.riskFlagRepo.On("ListOpen", mock.Anything).Return(nil, errors.New("db down"))
	f.forecastRepo.On("ListBetween", mock.Anything, mock.Anything, mock.Anything).Return([]domain.CashFlowForecast{}, nil).Maybe()
	f.statsRepo.On("GetLedgerCounts", mock.Anything).Return(&domain.LedgerCounts{}, nil).Maybe()

	overview, err := f.svc.Snapshot(context.Background())

	assert.Error(t, err)
	assert.Nil(t, overview)
}
