package port

import (
	"context"

	"bookkeeper/internal/domain"
)

// StatsRepository provides the raw row counts the workflow stats derive from.
type StatsRepository interface {
	GetLedgerCounts(ctx context.Context) (*domain.LedgerCounts, error)
}
