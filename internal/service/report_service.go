package service

import (
	"context"
	"fmt"
	"time"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
	"bookkeeper/internal/report"
)

// ReportService produces aggregate ledger reports.
type ReportService interface {
	Aging(ctx context.Context, asOf time.Time) (*domain.AgingReport, error)
	AgingWorkbook(ctx context.Context, asOf time.Time) ([]byte, error)
}

type reportService struct {
	reportRepo port.ReportRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) Aging(ctx context.Context, asOf time.Time) (*domain.AgingReport, error) {
	rpt, err := s.reportRepo.Aging(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("reportService.Aging: %w", err)
	}
	return rpt, nil
}

// AgingWorkbook renders the aging report as an xlsx workbook.
func (s *reportService) AgingWorkbook(ctx context.Context, asOf time.Time) ([]byte, error) {
	rpt, err := s.Aging(ctx, asOf)
	if err != nil {
		return nil, err
	}
	data, err := report.AgingWorkbook(rpt)
	if err != nil {
		return nil, fmt.Errorf("reportService.AgingWorkbook: %w", err)
	}
	return data, nil
}
