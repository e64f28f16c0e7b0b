package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

// MockSuggestionRepo is a mock implementation of port.SuggestionRepository.
type MockSuggestionRepo struct {
	mock.Mock
}

func (m *MockSuggestionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AISuggestion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AISuggestion), args.Error(1)
}

func (m *MockSuggestionRepo) ListByStatus(ctx context.Context, status domain.SuggestionStatus) ([]domain.AISuggestion, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AISuggestion), args.Error(1)
}

func (m *MockSuggestionRepo) Approve(ctx context.Context, params *port.ApproveSuggestionParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockSuggestionRepo) Reject(ctx context.Context, params *port.RejectSuggestionParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}
