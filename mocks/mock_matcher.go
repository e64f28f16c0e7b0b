package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/port"
)

// MockMatcher is a mock implementation of port.Matcher.
type MockMatcher struct {
	mock.Mock
}

func (m *MockMatcher) Reconcile(ctx context.Context, req *port.ReconcileRequest) (*port.ReconcileResults, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ReconcileResults), args.Error(1)
}

func (m *MockMatcher) DetectGaps(ctx context.Context, req *port.GapRequest) (*port.GapResults, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.GapResults), args.Error(1)
}

func (m *MockMatcher) SmartMatch(ctx context.Context, req *port.SmartMatchRequest) (*port.SmartMatchResults, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.SmartMatchResults), args.Error(1)
}
