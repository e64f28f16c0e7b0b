package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/service"
	"bookkeeper/mocks"
)

func newRiskFlagService() (service.RiskFlagService, *mocks.MockRiskFlagRepo, *mocks.MockOverviewService) {
	repo := new(mocks.MockRiskFlagRepo)
	overview := new(mocks.MockOverviewService)
	return service.NewRiskFlagService(repo, overview), repo, overview
}

func TestRiskFlagService_ResolveInvalidStatus(t *testing.T) {
	svc, repo, overview := newRiskFlagService()

	_, err := svc.Resolve(context.Background(), &service.ResolveRiskFlagInput{
		FlagID: uuid.New(),
		Status: domain.RiskFlagStatusOpen,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidResolution)
	repo.AssertNotCalled(t, "Resolve")
	overview.AssertNotCalled(t, "Snapshot")
}

func TestRiskFlagService_ResolveRefreshesSnapshot(t *testing.T) {
	svc, repo, overview := newRiskFlagService()

	id := uuid.New()
	repo.On("Resolve", mock.Anything, id, domain.RiskFlagStatusDismissed, "false positive", mock.Anything).Return(nil)
	repo.On("GetByID", mock.Anything, id).Return(&domain.RiskFlag{
		ID:     id,
		Status: domain.RiskFlagStatusDismissed,
	}, nil)
	overview.On("Snapshot", mock.Anything).Return(&domain.Overview{}, nil)

	got, err := svc.Resolve(context.Background(), &service.ResolveRiskFlagInput{
		FlagID: id,
		Status: domain.RiskFlagStatusDismissed,
		Notes:  "false positive",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RiskFlagStatusDismissed, got.Flag.Status)
	assert.NotNil(t, got.Overview)
	repo.AssertExpectations(t)
	overview.AssertNumberOfCalls(t, "Snapshot", 1)
}

func TestRiskFlagService_ResolveClosedFlag(t *testing.T) {
	svc, repo, overview := newRiskFlagService()

	repo.On("Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrRiskFlagClosed)

	_, err := svc.Resolve(context.Background(), &service.ResolveRiskFlagInput{
		FlagID: uuid.New(),
		Status: domain.RiskFlagStatusResolved,
	})

	assert.ErrorIs(t, err, domain.ErrRiskFlagClosed)
	overview.AssertNotCalled(t, "Snapshot")
}
