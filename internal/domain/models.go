package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bill represents a vendor bill (payable). Never hard-deleted; status is soft.
type Bill struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	ReferenceNumber string          `db:"reference_number" json:"reference_number"`
	TotalAmount     decimal.Decimal `db:"total_amount" json:"total_amount"`
	BillDate        time.Time       `db:"bill_date" json:"bill_date"`
	DueDate         *time.Time      `db:"due_date" json:"due_date"`
	VendorName      string          `db:"vendor_name" json:"vendor_name"`
	Status          string          `db:"status" json:"status"`
	IsPaid          bool            `db:"is_paid" json:"is_paid"`
	PaidAt          *time.Time      `db:"paid_at" json:"paid_at"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// Invoice represents a customer invoice (receivable), symmetric to Bill.
type Invoice struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	ReferenceNumber string          `db:"reference_number" json:"reference_number"`
	TotalAmount     decimal.Decimal `db:"total_amount" json:"total_amount"`
	InvoiceDate     time.Time       `db:"invoice_date" json:"invoice_date"`
	DueDate         *time.Time      `db:"due_date" json:"due_date"`
	CustomerName    string          `db:"customer_name" json:"customer_name"`
	Status          string          `db:"status" json:"status"`
	IsPaid          bool            `db:"is_paid" json:"is_paid"`
	PaidAt          *time.Time      `db:"paid_at" json:"paid_at"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// Payment represents money movement awaiting reconciliation. At most one of
// BillID/InvoiceID may be set; both nil means unreconciled.
type Payment struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	ReferenceNumber string          `db:"reference_number" json:"reference_number"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	PaymentDate     time.Time       `db:"payment_date" json:"payment_date"`
	PaymentType     string          `db:"payment_type" json:"payment_type"`
	BillID          *uuid.UUID      `db:"bill_id" json:"bill_id"`
	InvoiceID       *uuid.UUID      `db:"invoice_id" json:"invoice_id"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// MatchReason is one entry of a suggestion's ordered rule breakdown.
type MatchReason struct {
	Rule   string  `json:"rule"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// AISuggestion is a proposed payment↔bill/invoice pairing produced by the
// remote matcher. Immutable once resolved except for audit fields.
type AISuggestion struct {
	ID              uuid.UUID        `db:"id" json:"id"`
	SuggestionType  string           `db:"suggestion_type" json:"suggestion_type"`
	SourceType      SourceType       `db:"source_type" json:"source_type"`
	SourceID        uuid.UUID        `db:"source_id" json:"source_id"`
	TargetType      TargetType       `db:"target_type" json:"target_type"`
	TargetID        uuid.UUID        `db:"target_id" json:"target_id"`
	ConfidenceScore float64          `db:"confidence_score" json:"confidence_score"`
	MatchReasons    json.RawMessage  `db:"match_reasons" json:"match_reasons"`
	Status          SuggestionStatus `db:"status" json:"status"`
	ReviewedBy      *string          `db:"reviewed_by" json:"reviewed_by"`
	ReviewedAt      *time.Time       `db:"reviewed_at" json:"reviewed_at"`
	ReviewNotes     string           `db:"review_notes" json:"review_notes"`
	CreatedAt       time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at" json:"updated_at"`
}

// MatchCandidateDetails carries the denormalized display fields attached to a
// suggestion's source or target during enrichment.
type MatchCandidateDetails struct {
	ReferenceNumber string          `json:"reference_number"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
}

// EnrichedSuggestion is an AISuggestion with human-readable match candidates.
// SourceDetails/TargetDetails are nil when the corresponding lookup degraded.
type EnrichedSuggestion struct {
	AISuggestion
	SourceDetails *MatchCandidateDetails `json:"source_details,omitempty"`
	TargetDetails *MatchCandidateDetails `json:"target_details,omitempty"`
}

// RiskFlag is a detected anomaly requiring human triage.
type RiskFlag struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	FlagType        string          `db:"flag_type" json:"flag_type"`
	Severity        RiskSeverity    `db:"severity" json:"severity"`
	EntityType      string          `db:"entity_type" json:"entity_type"`
	EntityID        *uuid.UUID      `db:"entity_id" json:"entity_id"`
	Description     string          `db:"description" json:"description"`
	Details         json.RawMessage `db:"details" json:"details"`
	Status          RiskFlagStatus  `db:"status" json:"status"`
	ResolvedAt      *time.Time      `db:"resolved_at" json:"resolved_at"`
	ResolutionNotes string          `db:"resolution_notes" json:"resolution_notes"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// CashFlowForecast is a projection row produced by an external forecasting
// process. Read-only from this service's perspective.
type CashFlowForecast struct {
	ID                    uuid.UUID       `db:"id" json:"id"`
	ForecastDate          time.Time       `db:"forecast_date" json:"forecast_date"`
	PeriodType            PeriodType      `db:"period_type" json:"period_type"`
	ProjectedInflow       decimal.Decimal `db:"projected_inflow" json:"projected_inflow"`
	ProjectedOutflow      decimal.Decimal `db:"projected_outflow" json:"projected_outflow"`
	NetPosition           decimal.Decimal `db:"net_position" json:"net_position"`
	ConfidenceLevel       float64         `db:"confidence_level" json:"confidence_level"`
	DataCompletenessScore float64         `db:"data_completeness_score" json:"data_completeness_score"`
	RiskFactors           json.RawMessage `db:"risk_factors" json:"risk_factors"`
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
}

// FeedbackRecord is an append-only labeled training example for the remote matcher.
type FeedbackRecord struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	SuggestionID   uuid.UUID       `db:"suggestion_id" json:"suggestion_id"`
	FeedbackType   FeedbackType    `db:"feedback_type" json:"feedback_type"`
	FeedbackReason string          `db:"feedback_reason" json:"feedback_reason"`
	OriginalMatch  json.RawMessage `db:"original_match" json:"original_match"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// LedgerCounts holds the raw row counts the reconciliation stats derive from.
type LedgerCounts struct {
	TotalBills      int `db:"total_bills" json:"total_bills"`
	PaidBills       int `db:"paid_bills" json:"paid_bills"`
	TotalInvoices   int `db:"total_invoices" json:"total_invoices"`
	PaidInvoices    int `db:"paid_invoices" json:"paid_invoices"`
	TotalPayments   int `db:"total_payments" json:"total_payments"`
	MatchedPayments int `db:"matched_payments" json:"matched_payments"`
	OpenRiskFlags   int `db:"open_risk_flags" json:"open_risk_flags"`
}

// ReconciliationStats is the derived workflow-level summary.
type ReconciliationStats struct {
	ReconciledCount  int     `json:"reconciled_count"`
	TotalRecords     int     `json:"total_records"`
	DataCompleteness float64 `json:"data_completeness"`
	RiskScore        float64 `json:"risk_score"`
	OpenRiskFlags    int     `json:"open_risk_flags"`
}

// Overview is the consistent snapshot of the reconciliation workspace.
type Overview struct {
	Suggestions []EnrichedSuggestion `json:"suggestions"`
	RiskFlags   []RiskFlag           `json:"risk_flags"`
	Forecasts   []CashFlowForecast   `json:"forecasts"`
	Counts      LedgerCounts         `json:"counts"`
	Stats       ReconciliationStats  `json:"stats"`
}

// PromoCode is one entry of the promo configuration document.
type PromoCode struct {
	Code                   string           `json:"code"`
	Description            string           `json:"description,omitempty"`
	DiscountType           DiscountType     `json:"discount_type"`
	DiscountValue          decimal.Decimal  `json:"discount_value"`
	MinOrderValue          *decimal.Decimal `json:"min_order_value,omitempty"`
	MaxUses                *int             `json:"max_uses,omitempty"`
	CurrentUses            int              `json:"current_uses"`
	ValidFrom              *time.Time       `json:"valid_from,omitempty"`
	ValidUntil             *time.Time       `json:"valid_until,omitempty"`
	AppliesToPlans         []string         `json:"applies_to_plans,omitempty"`
	AppliesToJurisdictions []string         `json:"applies_to_jurisdictions,omitempty"`
	IsActive               bool             `json:"is_active"`
}

// PromoConfigSchemaVersion is the blob schema this build reads and writes.
const PromoConfigSchemaVersion = 1

// PromoConfig is the versioned promo configuration document stored in a
// single active configuration row.
type PromoConfig struct {
	SchemaVersion int         `json:"schema_version"`
	PromoCodes    []PromoCode `json:"promoCodes"`
}

// PromoRedemption is an append-only record of a successful promo application.
type PromoRedemption struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	Code           string          `db:"code" json:"code"`
	OrderTotal     decimal.Decimal `db:"order_total" json:"order_total"`
	DiscountAmount decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	PlanCode       string          `db:"plan_code" json:"plan_code"`
	Jurisdiction   string          `db:"jurisdiction" json:"jurisdiction"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// AgingRow is one bucketed line of the receivables/payables aging report.
type AgingRow struct {
	Bucket      AgingBucket     `json:"bucket"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// AgingReport summarizes open payables and receivables by days past due.
type AgingReport struct {
	AsOf        time.Time  `json:"as_of"`
	Payables    []AgingRow `json:"payables"`
	Receivables []AgingRow `json:"receivables"`
}
