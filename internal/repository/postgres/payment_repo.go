package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Payment, error) {
	if len(ids) == 0 {
		return []domain.Payment{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM bookkeeper_payments WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByIDs: %w", err)
	}
	var payments []domain.Payment
	if err := r.db.SelectContext(ctx, &payments, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByIDs: %w", err)
	}
	return payments, nil
}

func (r *paymentRepo) ListUnbound(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		`SELECT * FROM bookkeeper_payments
		 WHERE bill_id IS NULL AND invoice_id IS NULL
		 ORDER BY payment_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListUnbound: %w", err)
	}
	return payments, nil
}
