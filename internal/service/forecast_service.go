package service

import (
	"context"
	"fmt"
	"time"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

// ForecastService reads the externally produced cash-flow forecast window.
type ForecastService interface {
	ListUpcoming(ctx context.Context) ([]domain.CashFlowForecast, error)
}

type forecastService struct {
	forecastRepo port.ForecastRepository
	horizonDays  int
}

// NewForecastService creates a new ForecastService implementation.
func NewForecastService(forecastRepo port.ForecastRepository, horizonDays int) ForecastService {
	return &forecastService{forecastRepo: forecastRepo, horizonDays: horizonDays}
}

func (s *forecastService) ListUpcoming(ctx context.Context) ([]domain.CashFlowForecast, error) {
	now := time.Now()
	forecasts, err := s.forecastRepo.ListBetween(ctx, now, now.AddDate(0, 0, s.horizonDays))
	if err != nil {
		return nil, fmt.Errorf("forecastService.ListUpcoming: %w", err)
	}
	return forecasts, nil
}
