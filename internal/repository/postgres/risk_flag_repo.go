package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

type riskFlagRepo struct {
	db *sqlx.DB
}

// NewRiskFlagRepo creates a new PostgreSQL-backed RiskFlagRepository.
func NewRiskFlagRepo(db *sqlx.DB) port.RiskFlagRepository {
	return &riskFlagRepo{db: db}
}

func (r *riskFlagRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RiskFlag, error) {
	var flag domain.RiskFlag
	err := r.db.GetContext(ctx, &flag,
		"SELECT * FROM bookkeeper_risk_flags WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRiskFlagNotFound
		}
		return nil, fmt.Errorf("riskFlagRepo.GetByID: %w", err)
	}
	return &flag, nil
}

func (r *riskFlagRepo) ListOpen(ctx context.Context) ([]domain.RiskFlag, error) {
	var flags []domain.RiskFlag
	err := r.db.SelectContext(ctx, &flags,
		`SELECT * FROM bookkeeper_risk_flags WHERE status IN ('open', 'investigating')
		 ORDER BY CASE severity
		     WHEN 'critical' THEN 4
		     WHEN 'high' THEN 3
		     WHEN 'medium' THEN 2
		     ELSE 1
		 END DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("riskFlagRepo.ListOpen: %w", err)
	}
	return flags, nil
}

func (r *riskFlagRepo) Resolve(ctx context.Context, id uuid.UUID, status domain.RiskFlagStatus, notes string, resolvedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE bookkeeper_risk_flags
		 SET status = $1, resolution_notes = $2, resolved_at = $3, updated_at = $3
		 WHERE id = $4 AND status IN ('open', 'investigating')`,
		status, notes, resolvedAt, id)
	if err != nil {
		return fmt.Errorf("riskFlagRepo.Resolve: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM bookkeeper_risk_flags WHERE id = $1)", id); err != nil {
			return fmt.Errorf("riskFlagRepo.Resolve check: %w", err)
		}
		if !exists {
			return domain.ErrRiskFlagNotFound
		}
		return domain.ErrRiskFlagClosed
	}
	return nil
}
