package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

type agingBucketRow struct {
	Bucket      string          `db:"bucket"`
	Count       int             `db:"count"`
	TotalAmount decimal.Decimal `db:"total_amount"`
}

// agingQuery buckets open documents by days past the due date, falling back
// to the document date when no due date was captured.
const agingQuery = `SELECT
	CASE
		WHEN COALESCE(due_date, %[2]s)::date >= $1::date THEN 'current'
		WHEN $1::date - COALESCE(due_date, %[2]s)::date <= 30 THEN '1-30'
		WHEN $1::date - COALESCE(due_date, %[2]s)::date <= 60 THEN '31-60'
		WHEN $1::date - COALESCE(due_date, %[2]s)::date <= 90 THEN '61-90'
		ELSE '90+'
	END AS bucket,
	COUNT(*) AS count,
	COALESCE(SUM(total_amount), 0) AS total_amount
FROM %[1]s
WHERE is_paid = false
GROUP BY 1`

func (r *reportRepo) Aging(ctx context.Context, asOf time.Time) (*domain.AgingReport, error) {
	payables, err := r.agingRows(ctx, fmt.Sprintf(agingQuery, "bookkeeper_bills", "bill_date"), asOf)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.Aging payables: %w", err)
	}
	receivables, err := r.agingRows(ctx, fmt.Sprintf(agingQuery, "bookkeeper_invoices", "invoice_date"), asOf)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.Aging receivables: %w", err)
	}
	return &domain.AgingReport{
		AsOf:        asOf,
		Payables:    payables,
		Receivables: receivables,
	}, nil
}

// agingRows runs a bucket query and normalizes the result into reporting
// order, filling zero rows for empty buckets.
func (r *reportRepo) agingRows(ctx context.Context, query string, asOf time.Time) ([]domain.AgingRow, error) {
	var raw []agingBucketRow
	if err := r.db.SelectContext(ctx, &raw, query, asOf); err != nil {
		return nil, err
	}
	byBucket := make(map[domain.AgingBucket]agingBucketRow, len(raw))
	for _, row := range raw {
		byBucket[domain.AgingBucket(row.Bucket)] = row
	}
	rows := make([]domain.AgingRow, 0, len(domain.AgingBuckets))
	for _, bucket := range domain.AgingBuckets {
		row := byBucket[bucket]
		rows = append(rows, domain.AgingRow{
			Bucket:      bucket,
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		})
	}
	return rows, nil
}
