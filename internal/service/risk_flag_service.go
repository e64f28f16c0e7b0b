package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

// ResolveRiskFlagInput carries a risk flag resolution.
type ResolveRiskFlagInput struct {
	FlagID uuid.UUID
	Status domain.RiskFlagStatus
	Notes  string
}

// ResolveRiskFlagResult pairs the resolved flag with the refreshed workspace
// snapshot. Resolution changes the open-flag count the risk score derives
// from, so callers render from the fresh view.
type ResolveRiskFlagResult struct {
	Flag     *domain.RiskFlag `json:"flag"`
	Overview *domain.Overview `json:"overview"`
}

// RiskFlagService manages triage of detected anomalies.
type RiskFlagService interface {
	ListOpen(ctx context.Context) ([]domain.RiskFlag, error)
	Resolve(ctx context.Context, input *ResolveRiskFlagInput) (*ResolveRiskFlagResult, error)
}

type riskFlagService struct {
	riskFlagRepo port.RiskFlagRepository
	overview     OverviewService
}

// NewRiskFlagService creates a new RiskFlagService implementation.
func NewRiskFlagService(riskFlagRepo port.RiskFlagRepository, overview OverviewService) RiskFlagService {
	return &riskFlagService{riskFlagRepo: riskFlagRepo, overview: overview}
}

func (s *riskFlagService) ListOpen(ctx context.Context) ([]domain.RiskFlag, error) {
	flags, err := s.riskFlagRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("riskFlagService.ListOpen: %w", err)
	}
	return flags, nil
}

// Resolve moves an open flag to a terminal status and returns the updated row
// with a fresh workspace snapshot.
func (s *riskFlagService) Resolve(ctx context.Context, input *ResolveRiskFlagInput) (*ResolveRiskFlagResult, error) {
	if !domain.TerminalRiskFlagStatuses[input.Status] {
		return nil, domain.ErrInvalidResolution
	}
	if err := s.riskFlagRepo.Resolve(ctx, input.FlagID, input.Status, input.Notes, time.Now()); err != nil {
		return nil, fmt.Errorf("riskFlagService.Resolve: %w", err)
	}
	flag, err := s.riskFlagRepo.GetByID(ctx, input.FlagID)
	if err != nil {
		return nil, fmt.Errorf("riskFlagService.Resolve: %w", err)
	}
	overview, err := s.overview.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("riskFlagService.Resolve: %w", err)
	}
	return &ResolveRiskFlagResult{Flag: flag, Overview: overview}, nil
}
