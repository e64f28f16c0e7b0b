package port

import (
	"context"
	"time"

	"bookkeeper/internal/domain"
)

// ReportRepository provides aggregate reporting queries.
type ReportRepository interface {
	Aging(ctx context.Context, asOf time.Time) (*domain.AgingReport, error)
}
