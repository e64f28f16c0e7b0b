package service

import "bookkeeper/internal/domain"

// ComputeStats derives the workflow-level summary from raw ledger counts.
//
// Data completeness is defined as 1.0 when there are no rows at all: nothing
// to reconcile means fully reconciled, and it avoids a zero division. The
// risk score is a linear decay over open risk flags, floor-clamped at zero;
// it is a display heuristic, not a calibrated score.
func ComputeStats(counts domain.LedgerCounts) domain.ReconciliationStats {
	reconciled := counts.PaidBills + counts.PaidInvoices
	total := counts.TotalBills + counts.TotalInvoices + counts.TotalPayments

	completeness := 1.0
	if total > 0 {
		completeness = float64(reconciled+counts.MatchedPayments) / float64(total)
		if completeness > 1 {
			completeness = 1
		}
		if completeness < 0 {
			completeness = 0
		}
	}

	risk := 100 - 10*float64(counts.OpenRiskFlags)
	if risk < 0 {
		risk = 0
	}

	return domain.ReconciliationStats{
		ReconciledCount:  reconciled,
		TotalRecords:     total,
		DataCompleteness: completeness,
		RiskScore:        risk,
		OpenRiskFlags:    counts.OpenRiskFlags,
	}
}
