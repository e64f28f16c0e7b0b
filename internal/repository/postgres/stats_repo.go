package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const ledgerCountsQuery = `SELECT
	(SELECT COUNT(*) FROM bookkeeper_bills) AS total_bills,
	(SELECT COUNT(*) FROM bookkeeper_bills WHERE is_paid) AS paid_bills,
	(SELECT COUNT(*) FROM bookkeeper_invoices) AS total_invoices,
	(SELECT COUNT(*) FROM bookkeeper_invoices WHERE is_paid) AS paid_invoices,
	(SELECT COUNT(*) FROM bookkeeper_payments) AS total_payments,
	(SELECT COUNT(*) FROM bookkeeper_payments WHERE bill_id IS NOT NULL OR invoice_id IS NOT NULL) AS matched_payments,
	(SELECT COUNT(*) FROM bookkeeper_risk_flags WHERE status IN ('open', 'investigating')) AS open_risk_flags`

func (r *statsRepo) GetLedgerCounts(ctx context.Context) (*domain.LedgerCounts, error) {
	var counts domain.LedgerCounts
	if err := r.db.GetContext(ctx, &counts, ledgerCountsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetLedgerCounts: %w", err)
	}
	return &counts, nil
}
