package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
)

// MockRiskFlagRepo is a mock implementation of port.RiskFlagRepository.
type MockRiskFlagRepo struct {
	mock.Mock
}

func (m *MockRiskFlagRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RiskFlag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RiskFlag), args.Error(1)
}

func (m *MockRiskFlagRepo) ListOpen(ctx context.Context) ([]domain.RiskFlag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RiskFlag), args.Error(1)
}

func (m *MockRiskFlagRepo) Resolve(ctx context.Context, id uuid.UUID, status domain.RiskFlagStatus, notes string, resolvedAt time.Time) error {
	args := m.Called(ctx, id, status, notes, resolvedAt)
	return args.Error(0)
}
