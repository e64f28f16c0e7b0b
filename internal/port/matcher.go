package port

import (
	"context"
	"encoding/json"

	"bookkeeper/internal/domain"
)

// ReconcileRequest asks the gateway to pair unreconciled records.
type ReconcileRequest struct {
	Type                 domain.ReconcileScope `json:"type"`
	AutoApproveThreshold float64               `json:"autoApproveThreshold"`
}

// ReconcileResults summarizes a reconciliation run.
type ReconcileResults struct {
	AutoMatched int `json:"autoMatched"`
	NeedsReview int `json:"needsReview"`
}

// GapRequest bounds a gap-detection scan. Dates are ISO YYYY-MM-DD strings.
type GapRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// GapResults carries the gateway's gap-detection findings. The missing-record
// payloads are opaque to this service.
type GapResults struct {
	RiskScore       float64           `json:"riskScore"`
	MissingBills    []json.RawMessage `json:"missingBills"`
	MissingInvoices []json.RawMessage `json:"missingInvoices"`
}

// SmartMatchRequest ships the current unreconciled state plus recent human
// feedback to the gateway. All matching logic lives server-side.
type SmartMatchRequest struct {
	UnmatchedBills    []domain.Bill           `json:"unmatchedBills"`
	UnmatchedInvoices []domain.Invoice        `json:"unmatchedInvoices"`
	Payments          []domain.Payment        `json:"payments"`
	UserFeedback      []domain.FeedbackRecord `json:"userFeedback"`
}

// SmartMatchResults summarizes a smart-match run.
type SmartMatchResults struct {
	AutoMatched int             `json:"autoMatched"`
	NeedsReview int             `json:"needsReview"`
	Insights    json.RawMessage `json:"insights,omitempty"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// Matcher abstracts the opaque hosted reconciliation gateway.
type Matcher interface {
	Reconcile(ctx context.Context, req *ReconcileRequest) (*ReconcileResults, error)
	DetectGaps(ctx context.Context, req *GapRequest) (*GapResults, error)
	SmartMatch(ctx context.Context, req *SmartMatchRequest) (*SmartMatchResults, error)
}
