package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
	"bookkeeper/internal/service"
	"bookkeeper/mocks"
)

func newSuggestionService() (service.SuggestionService, *mocks.MockSuggestionRepo, *mocks.MockEnrichmentService, *mocks.MockOverviewService) {
	repo := new(mocks.MockSuggestionRepo)
	enrichment := new(mocks.MockEnrichmentService)
	overview := new(mocks.MockOverviewService)
	return service.NewSuggestionService(repo, enrichment, overview), repo, enrichment, overview
}

func TestSuggestionService_ListPending(t *testing.T) {
	svc, repo, enrichment, _ := newSuggestionService()

	pending := []domain.AISuggestion{{ID: uuid.New(), Status: domain.SuggestionStatusPending}}
	enriched := []domain.EnrichedSuggestion{{AISuggestion: pending[0]}}

	repo.On("ListByStatus", mock.Anything, domain.SuggestionStatusPending).Return(pending, nil)
	enrichment.On("Enrich", mock.Anything, pending).Return(enriched)

	got, err := svc.ListPending(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, enriched, got)
}

func TestSuggestionService_ApproveRefreshesSnapshot(t *testing.T) {
	svc, repo, _, overview := newSuggestionService()

	id := uuid.New()
	repo.On("Approve", mock.Anything, mock.MatchedBy(func(p *port.ApproveSuggestionParams) bool {
		return p.SuggestionID == id && p.ReviewedBy == "fatima" && !p.ReviewedAt.IsZero()
	})).Return(nil)
	overview.On("Snapshot", mock.Anything).Return(&domain.Overview{}, nil)

	got, err := svc.Approve(context.Background(), &service.ApproveSuggestionInput{
		SuggestionID: id,
		ReviewedBy:   "fatima",
	})

	assert.NoError(t, err)
	assert.NotNil(t, got)
	repo.AssertExpectations(t)
	overview.AssertNumberOfCalls(t, "Snapshot", 1)
}

func TestSuggestionService_ApproveFailureSkipsSnapshot(t *testing.T) {
	svc, repo, _, overview := newSuggestionService()

	repo.On("Approve", mock.Anything, mock.Anything).Return(domain.ErrSuggestionResolved)

	got, err := svc.Approve(context.Background(), &service.ApproveSuggestionInput{SuggestionID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrSuggestionResolved)
	assert.Nil(t, got)
	overview.AssertNotCalled(t, "Snapshot")
}

func TestSuggestionService_RejectRecordsReason(t *testing.T) {
	svc, repo, _, overview := newSuggestionService()

	id := uuid.New()
	repo.On("Reject", mock.Anything, mock.MatchedBy(func(p *port.RejectSuggestionParams) bool {
		return p.SuggestionID == id && p.Reason == "amount mismatch"
	})).Return(nil)
	overview.On("Snapshot", mock.Anything).Return(&domain.Overview{}, nil)

	got, err := svc.Reject(context.Background(), &service.RejectSuggestionInput{
		SuggestionID: id,
		Reason:       "amount mismatch",
	})

	assert.NoError(t, err)
	assert.NotNil(t, got)
	repo.AssertExpectations(t)
}
