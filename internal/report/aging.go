// Package report renders ledger reports into exportable formats.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"bookkeeper/internal/domain"
)

// AgingWorkbook renders an aging report as an xlsx workbook with one sheet
// per side of the ledger.
func AgingWorkbook(rpt *domain.AgingReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Payables"); err != nil {
		return nil, fmt.Errorf("report.AgingWorkbook: %w", err)
	}
	if _, err := f.NewSheet("Receivables"); err != nil {
		return nil, fmt.Errorf("report.AgingWorkbook: %w", err)
	}

	if err := writeAgingSheet(f, "Payables", rpt.Payables, rpt); err != nil {
		return nil, err
	}
	if err := writeAgingSheet(f, "Receivables", rpt.Receivables, rpt); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("report.AgingWorkbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeAgingSheet(f *excelize.File, sheet string, rows []domain.AgingRow, rpt *domain.AgingReport) error {
	header := [][]interface{}{
		{"As of", rpt.AsOf.Format("2006-01-02")},
		{},
		{"Bucket", "Count", "Total Amount"},
	}
	for i, row := range header {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("report.writeAgingSheet: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("report.writeAgingSheet: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, len(header)+1+i)
		if err != nil {
			return fmt.Errorf("report.writeAgingSheet: %w", err)
		}
		values := []interface{}{string(row.Bucket), row.Count, row.TotalAmount.String()}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("report.writeAgingSheet: %w", err)
		}
	}
	return nil
}
