package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

type billRepo struct {
	db *sqlx.DB
}

// NewBillRepo creates a new PostgreSQL-backed BillRepository.
func NewBillRepo(db *sqlx.DB) port.BillRepository {
	return &billRepo{db: db}
}

func (r *billRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Bill, error) {
	if len(ids) == 0 {
		return []domain.Bill{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM bookkeeper_bills WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("billRepo.ListByIDs: %w", err)
	}
	var bills []domain.Bill
	if err := r.db.SelectContext(ctx, &bills, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("billRepo.ListByIDs: %w", err)
	}
	return bills, nil
}

func (r *billRepo) ListUnpaid(ctx context.Context) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := r.db.SelectContext(ctx, &bills,
		"SELECT * FROM bookkeeper_bills WHERE is_paid = false ORDER BY bill_date DESC")
	if err != nil {
		return nil, fmt.Errorf("billRepo.ListUnpaid: %w", err)
	}
	return bills, nil
}
