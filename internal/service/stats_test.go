package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/service"
)

func TestComputeStats_EmptyLedger(t *testing.T) {
	stats := service.ComputeStats(domain.LedgerCounts{})

	assert.Equal(t, 0, stats.ReconciledCount)
	assert.Equal(t, 0, stats.TotalRecords)
	assert.Equal(t, 1.0, stats.DataCompleteness)
	assert.Equal(t, 100.0, stats.RiskScore)
}

func TestComputeStats_PartiallyReconciled(t *testing.T) {
	stats := service.ComputeStats(domain.LedgerCounts{
		TotalBills:      10,
		PaidBills:       4,
		TotalInvoices:   10,
		PaidInvoices:    6,
		TotalPayments:   10,
		MatchedPayments: 10,
	})

	assert.Equal(t, 10, stats.ReconciledCount)
	assert.Equal(t, 30, stats.TotalRecords)
	assert.InDelta(t, 20.0/30.0, stats.DataCompleteness, 1e-9)
	assert.Equal(t, 100.0, stats.RiskScore)
}

func TestComputeStats_FullyReconciled(t *testing.T) {
	stats := service.ComputeStats(domain.LedgerCounts{
		TotalBills:      5,
		PaidBills:       5,
		TotalInvoices:   5,
		PaidInvoices:    5,
		TotalPayments:   10,
		MatchedPayments: 10,
	})

	assert.Equal(t, 1.0, stats.DataCompleteness)
}

func TestComputeStats_RiskScoreDecay(t *testing.T) {
	cases := []struct {
		openFlags int
		want      float64
	}{
		{0, 100},
		{1, 90},
		{5, 50},
		{10, 0},
		{11, 0},
		{50, 0},
	}
	for _, tc := range cases {
		stats := service.ComputeStats(domain.LedgerCounts{OpenRiskFlags: tc.openFlags})
		assert.Equal(t, tc.want, stats.RiskScore, "openFlags=%d", tc.openFlags)
		assert.Equal(t, tc.openFlags, stats.OpenRiskFlags)
	}
}
