package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/service"
	"bookkeeper/mocks"
)

func newEnrichment() (service.EnrichmentService, *mocks.MockBillRepo, *mocks.MockInvoiceRepo, *mocks.MockPaymentRepo) {
	billRepo := new(mocks.MockBillRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	paymentRepo := new(mocks.MockPaymentRepo)
	return service.NewEnrichmentService(billRepo, invoiceRepo, paymentRepo), billRepo, invoiceRepo, paymentRepo
}

func TestEnrich_EmptyInputSkipsLookups(t *testing.T) {
	svc, billRepo, invoiceRepo, paymentRepo := newEnrichment()

	enriched := svc.Enrich(context.Background(), nil)

	assert.Empty(t, enriched)
	billRepo.AssertNotCalled(t, "ListByIDs")
	invoiceRepo.AssertNotCalled(t, "ListByIDs")
	paymentRepo.AssertNotCalled(t, "ListByIDs")
}

func TestEnrich_BillSuggestion(t *testing.T) {
	svc, billRepo, invoiceRepo, paymentRepo := newEnrichment()

	billID := uuid.New()
	paymentID := uuid.New()
	billDate := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	payDate := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

	billRepo.On("ListByIDs", mock.Anything, []uuid.UUID{billID}).Return([]domain.Bill{{
		ID:              billID,
		ReferenceNumber: "BILL-1001",
		TotalAmount:     decimal.NewFromInt(4200),
		BillDate:        billDate,
		VendorName:      "Desert Office Supplies LLC",
		Status:          "pending",
	}}, nil)
	invoiceRepo.On("ListByIDs", mock.Anything, mock.Anything).Return([]domain.Invoice{}, nil)
	paymentRepo.On("ListByIDs", mock.Anything, []uuid.UUID{paymentID}).Return([]domain.Payment{{
		ID:              paymentID,
		ReferenceNumber: "PAY-3001",
		Amount:          decimal.NewFromInt(4200),
		PaymentDate:     payDate,
		PaymentType:     "bank_transfer",
	}}, nil)

	enriched := svc.Enrich(context.Background(), []domain.AISuggestion{{
		ID:         uuid.New(),
		SourceType: domain.SourceTypeBill,
		SourceID:   billID,
		TargetID:   paymentID,
	}})

	assert.Len(t, enriched, 1)
	if assert.NotNil(t, enriched[0].SourceDetails) {
		assert.Equal(t, "BILL-1001", enriched[0].SourceDetails.ReferenceNumber)
		assert.Equal(t, "Desert Office Supplies LLC", enriched[0].SourceDetails.Name)
	}
	if assert.NotNil(t, enriched[0].TargetDetails) {
		assert.Equal(t, "PAY-3001", enriched[0].TargetDetails.ReferenceNumber)
		assert.Equal(t, "unreconciled", enriched[0].TargetDetails.Status)
	}
}

func TestEnrich_LookupFailureDegrades(t *testing.T) {
	svc, billRepo, invoiceRepo, paymentRepo := newEnrichment()

	billID := uuid.New()
	paymentID := uuid.New()

	billRepo.On("ListByIDs", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	invoiceRepo.On("ListByIDs", mock.Anything, mock.Anything).Return([]domain.Invoice{}, nil)
	paymentRepo.On("ListByIDs", mock.Anything, mock.Anything).Return([]domain.Payment{{
		ID:              paymentID,
		ReferenceNumber: "PAY-9",
		Amount:          decimal.NewFromInt(10),
	}}, nil)

	enriched := svc.Enrich(context.Background(), []domain.AISuggestion{{
		SourceType: domain.SourceTypeBill,
		SourceID:   billID,
		TargetID:   paymentID,
	}})

	// The suggestion still comes back; only the failed side is missing.
	assert.Len(t, enriched, 1)
	assert.Nil(t, enriched[0].SourceDetails)
	assert.NotNil(t, enriched[0].TargetDetails)
}

func TestEnrich_ReconciledPaymentStatus(t *testing.T) {
	svc, billRepo, invoiceRepo, paymentRepo := newEnrichment()

	invoiceID := uuid.New()
	paymentID := uuid.New()

	billRepo.On("ListByIDs", mock.Anything, mock.Anything).Return([]domain.Bill{}, nil)
	invoiceRepo.On("ListByIDs", mock.Anything, []uuid.UUID{invoiceID}).Return([]domain.Invoice{{
		ID:              invoiceID,
		ReferenceNumber: "INV-2001",
		CustomerName:    "Gulf Trading FZE",
	}}, nil)
	paymentRepo.On("ListByIDs", mock.Anything, mock.Anything).Return([]domain.Payment{{
		ID:        paymentID,
		InvoiceID: &invoiceID,
	}}, nil)

	enriched := svc.Enrich(context.Background(), []domain.AISuggestion{{
		SourceType: domain.SourceTypeInvoice,
		SourceID:   invoiceID,
		TargetID:   paymentID,
	}})

	assert.Equal(t, "INV-2001", enriched[0].SourceDetails.ReferenceNumber)
	assert.Equal(t, "reconciled", enriched[0].TargetDetails.Status)
}
