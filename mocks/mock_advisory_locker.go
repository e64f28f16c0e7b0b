package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAdvisoryLocker is a mock implementation of port.AdvisoryLocker.
type MockAdvisoryLocker struct {
	mock.Mock
}

func (m *MockAdvisoryLocker) TryLock(ctx context.Context, key int64) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdvisoryLocker) Unlock(ctx context.Context, key int64) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
