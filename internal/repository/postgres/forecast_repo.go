package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

type forecastRepo struct {
	db *sqlx.DB
}

// NewForecastRepo creates a new PostgreSQL-backed ForecastRepository.
func NewForecastRepo(db *sqlx.DB) port.ForecastRepository {
	return &forecastRepo{db: db}
}

func (r *forecastRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.CashFlowForecast, error) {
	var forecasts []domain.CashFlowForecast
	err := r.db.SelectContext(ctx, &forecasts,
		`SELECT * FROM bookkeeper_cash_flow_forecasts
		 WHERE forecast_date >= $1 AND forecast_date <= $2
		 ORDER BY forecast_date ASC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("forecastRepo.ListBetween: %w", err)
	}
	return forecasts, nil
}
