package port

import (
	"context"

	"github.com/google/uuid"

	"bookkeeper/internal/domain"
)

// BillRepository provides read access to vendor bills.
type BillRepository interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Bill, error)
	ListUnpaid(ctx context.Context) ([]domain.Bill, error)
}

// InvoiceRepository provides read access to customer invoices.
type InvoiceRepository interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Invoice, error)
	ListUnpaid(ctx context.Context) ([]domain.Invoice, error)
}

// PaymentRepository provides read access to payments.
type PaymentRepository interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Payment, error)
	ListUnbound(ctx context.Context) ([]domain.Payment, error)
}
