package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

// ApproveSuggestionInput carries a review approval.
type ApproveSuggestionInput struct {
	SuggestionID uuid.UUID
	ReviewedBy   string
	Notes        string
}

// RejectSuggestionInput carries a review rejection.
type RejectSuggestionInput struct {
	SuggestionID uuid.UUID
	ReviewedBy   string
	Reason       string
}

// SuggestionService manages the human review workflow over AI match
// suggestions.
type SuggestionService interface {
	ListPending(ctx context.Context) ([]domain.EnrichedSuggestion, error)
	Approve(ctx context.Context, input *ApproveSuggestionInput) (*domain.Overview, error)
	Reject(ctx context.Context, input *RejectSuggestionInput) (*domain.Overview, error)
}

type suggestionService struct {
	suggestionRepo port.SuggestionRepository
	enrichment     EnrichmentService
	overview       OverviewService
}

// NewSuggestionService creates a new SuggestionService implementation.
func NewSuggestionService(
	suggestionRepo port.SuggestionRepository,
	enrichment EnrichmentService,
	overview OverviewService,
) SuggestionService {
	return &suggestionService{
		suggestionRepo: suggestionRepo,
		enrichment:     enrichment,
		overview:       overview,
	}
}

func (s *suggestionService) ListPending(ctx context.Context) ([]domain.EnrichedSuggestion, error) {
	suggestions, err := s.suggestionRepo.ListByStatus(ctx, domain.SuggestionStatusPending)
	if err != nil {
		return nil, fmt.Errorf("suggestionService.ListPending: %w", err)
	}
	return s.enrichment.Enrich(ctx, suggestions), nil
}

// Approve applies the suggested match. The repository runs the status
// transition, payment binding, source paid-marking, and feedback row in one
// transaction, so a failure leaves no partial state. A fresh snapshot is
// returned so callers render consistent post-approval data.
func (s *suggestionService) Approve(ctx context.Context, input *ApproveSuggestionInput) (*domain.Overview, error) {
	err := s.suggestionRepo.Approve(ctx, &port.ApproveSuggestionParams{
		SuggestionID: input.SuggestionID,
		ReviewedBy:   input.ReviewedBy,
		Notes:        input.Notes,
		ReviewedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("suggestionService.Approve: %w", err)
	}
	return s.overview.Snapshot(ctx)
}

// Reject marks the suggestion rejected and records the rejection as matcher
// feedback, then returns a fresh snapshot.
func (s *suggestionService) Reject(ctx context.Context, input *RejectSuggestionInput) (*domain.Overview, error) {
	err := s.suggestionRepo.Reject(ctx, &port.RejectSuggestionParams{
		SuggestionID: input.SuggestionID,
		ReviewedBy:   input.ReviewedBy,
		Reason:       input.Reason,
		ReviewedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("suggestionService.Reject: %w", err)
	}
	return s.overview.Snapshot(ctx)
}
