package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
)

// MockPromoConfigRepo is a mock implementation of port.PromoConfigRepository.
type MockPromoConfigRepo struct {
	mock.Mock
}

func (m *MockPromoConfigRepo) GetActive(ctx context.Context, name string) (*domain.PromoConfig, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromoConfig), args.Error(1)
}

func (m *MockPromoConfigRepo) Redeem(ctx context.Context, name string, redemption *domain.PromoRedemption) error {
	args := m.Called(ctx, name, redemption)
	return args.Error(0)
}
