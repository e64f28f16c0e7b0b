package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookkeeper/internal/domain"
)

// RiskFlagRepository manages detected anomalies awaiting triage.
type RiskFlagRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RiskFlag, error)
	ListOpen(ctx context.Context) ([]domain.RiskFlag, error)
	Resolve(ctx context.Context, id uuid.UUID, status domain.RiskFlagStatus, notes string, resolvedAt time.Time) error
}
