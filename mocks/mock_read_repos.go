package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
)

// MockForecastRepo is a mock implementation of port.ForecastRepository.
type MockForecastRepo struct {
	mock.Mock
}

func (m *MockForecastRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.CashFlowForecast, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowForecast), args.Error(1)
}

// MockFeedbackRepo is a mock implementation of port.FeedbackRepository.
type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) ListRecent(ctx context.Context, limit int) ([]domain.FeedbackRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedbackRecord), args.Error(1)
}

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) GetLedgerCounts(ctx context.Context) (*domain.LedgerCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerCounts), args.Error(1)
}

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Aging(ctx context.Context, asOf time.Time) (*domain.AgingReport, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgingReport), args.Error(1)
}
