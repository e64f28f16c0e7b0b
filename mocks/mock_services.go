package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/promo"
	"bookkeeper/internal/service"
)

// MockOverviewService is a mock implementation of service.OverviewService.
type MockOverviewService struct {
	mock.Mock
}

func (m *MockOverviewService) Snapshot(ctx context.Context) (*domain.Overview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

// MockEnrichmentService is a mock implementation of service.EnrichmentService.
type MockEnrichmentService struct {
	mock.Mock
}

func (m *MockEnrichmentService) Enrich(ctx context.Context, suggestions []domain.AISuggestion) []domain.EnrichedSuggestion {
	args := m.Called(ctx, suggestions)
	return args.Get(0).([]domain.EnrichedSuggestion)
}

// MockSuggestionService is a mock implementation of service.SuggestionService.
type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) ListPending(ctx context.Context) ([]domain.EnrichedSuggestion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnrichedSuggestion), args.Error(1)
}

func (m *MockSuggestionService) Approve(ctx context.Context, input *service.ApproveSuggestionInput) (*domain.Overview, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

func (m *MockSuggestionService) Reject(ctx context.Context, input *service.RejectSuggestionInput) (*domain.Overview, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

// MockReconcileService is a mock implementation of service.ReconcileService.
type MockReconcileService struct {
	mock.Mock
}

func (m *MockReconcileService) RunReconciliation(ctx context.Context, scope domain.ReconcileScope) (*service.ReconcileRunResult, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReconcileRunResult), args.Error(1)
}

func (m *MockReconcileService) DetectGaps(ctx context.Context, input *service.DetectGapsInput) (*service.GapScanResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GapScanResult), args.Error(1)
}

func (m *MockReconcileService) SmartMatch(ctx context.Context) (*service.SmartMatchResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SmartMatchResult), args.Error(1)
}

// MockRiskFlagService is a mock implementation of service.RiskFlagService.
type MockRiskFlagService struct {
	mock.Mock
}

func (m *MockRiskFlagService) ListOpen(ctx context.Context) ([]domain.RiskFlag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RiskFlag), args.Error(1)
}

func (m *MockRiskFlagService) Resolve(ctx context.Context, input *service.ResolveRiskFlagInput) (*service.ResolveRiskFlagResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ResolveRiskFlagResult), args.Error(1)
}

// MockPromoService is a mock implementation of service.PromoService.
type MockPromoService struct {
	mock.Mock
}

func (m *MockPromoService) Validate(ctx context.Context, input *service.ValidatePromoInput) (*promo.Result, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promo.Result), args.Error(1)
}

func (m *MockPromoService) Redeem(ctx context.Context, input *service.ValidatePromoInput) (*promo.Result, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promo.Result), args.Error(1)
}

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Aging(ctx context.Context, asOf time.Time) (*domain.AgingReport, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgingReport), args.Error(1)
}

func (m *MockReportService) AgingWorkbook(ctx context.Context, asOf time.Time) ([]byte, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
