package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

// EnrichmentService joins raw suggestion rows against the bill, invoice, and
// payment tables to produce human-readable match candidates.
type EnrichmentService interface {
	Enrich(ctx context.Context, suggestions []domain.AISuggestion) []domain.EnrichedSuggestion
}

type enrichmentService struct {
	billRepo    port.BillRepository
	invoiceRepo port.InvoiceRepository
	paymentRepo port.PaymentRepository
}

// NewEnrichmentService creates a new EnrichmentService implementation.
func NewEnrichmentService(
	billRepo port.BillRepository,
	invoiceRepo port.InvoiceRepository,
	paymentRepo port.PaymentRepository,
) EnrichmentService {
	return &enrichmentService{
		billRepo:    billRepo,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
}

// Enrich issues exactly three bulk lookups (bills, invoices, payments)
// regardless of input size, then resolves details via map lookup. An empty
// input returns immediately without touching the repositories. A failed
// lookup degrades: the affected details stay nil and enrichment continues.
func (s *enrichmentService) Enrich(ctx context.Context, suggestions []domain.AISuggestion) []domain.EnrichedSuggestion {
	enriched := make([]domain.EnrichedSuggestion, 0, len(suggestions))
	if len(suggestions) == 0 {
		return enriched
	}

	var billIDs, invoiceIDs, paymentIDs []uuid.UUID
	for _, sg := range suggestions {
		switch sg.SourceType {
		case domain.SourceTypeBill:
			billIDs = append(billIDs, sg.SourceID)
		case domain.SourceTypeInvoice:
			invoiceIDs = append(invoiceIDs, sg.SourceID)
		}
		paymentIDs = append(paymentIDs, sg.TargetID)
	}

	billsByID := make(map[uuid.UUID]domain.Bill)
	if bills, err := s.billRepo.ListByIDs(ctx, billIDs); err != nil {
		log.Printf("enrichmentService.Enrich: bill lookup failed: %v", err)
	} else {
		for _, b := range bills {
			billsByID[b.ID] = b
		}
	}

	invoicesByID := make(map[uuid.UUID]domain.Invoice)
	if invoices, err := s.invoiceRepo.ListByIDs(ctx, invoiceIDs); err != nil {
		log.Printf("enrichmentService.Enrich: invoice lookup failed: %v", err)
	} else {
		for _, inv := range invoices {
			invoicesByID[inv.ID] = inv
		}
	}

	paymentsByID := make(map[uuid.UUID]domain.Payment)
	if payments, err := s.paymentRepo.ListByIDs(ctx, paymentIDs); err != nil {
		log.Printf("enrichmentService.Enrich: payment lookup failed: %v", err)
	} else {
		for _, p := range payments {
			paymentsByID[p.ID] = p
		}
	}

	for _, sg := range suggestions {
		es := domain.EnrichedSuggestion{AISuggestion: sg}

		switch sg.SourceType {
		case domain.SourceTypeBill:
			if b, ok := billsByID[sg.SourceID]; ok {
				es.SourceDetails = &domain.MatchCandidateDetails{
					ReferenceNumber: b.ReferenceNumber,
					Amount:          b.TotalAmount,
					Date:            b.BillDate,
					Name:            b.VendorName,
					Status:          b.Status,
				}
			}
		case domain.SourceTypeInvoice:
			if inv, ok := invoicesByID[sg.SourceID]; ok {
				es.SourceDetails = &domain.MatchCandidateDetails{
					ReferenceNumber: inv.ReferenceNumber,
					Amount:          inv.TotalAmount,
					Date:            inv.InvoiceDate,
					Name:            inv.CustomerName,
					Status:          inv.Status,
				}
			}
		}

		if p, ok := paymentsByID[sg.TargetID]; ok {
			status := "unreconciled"
			if p.BillID != nil || p.InvoiceID != nil {
				status = "reconciled"
			}
			es.TargetDetails = &domain.MatchCandidateDetails{
				ReferenceNumber: p.ReferenceNumber,
				Amount:          p.Amount,
				Date:            p.PaymentDate,
				Name:            p.PaymentType,
				Status:          status,
			}
		}

		enriched = append(enriched, es)
	}

	return enriched
}
