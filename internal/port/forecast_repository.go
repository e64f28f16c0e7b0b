package port

import (
	"context"
	"time"

	"bookkeeper/internal/domain"
)

// ForecastRepository provides read access to externally produced cash-flow forecasts.
type ForecastRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.CashFlowForecast, error)
}
