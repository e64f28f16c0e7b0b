package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Invoice, error) {
	if len(ids) == 0 {
		return []domain.Invoice{}, nil
	}
	query, args, err := sqlx.In("SELECT * FROM bookkeeper_invoices WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByIDs: %w", err)
	}
	var invoices []domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByIDs: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) ListUnpaid(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM bookkeeper_invoices WHERE is_paid = false ORDER BY invoice_date DESC")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListUnpaid: %w", err)
	}
	return invoices, nil
}
