package domain

// SuggestionStatus represents the lifecycle of an AI reconciliation suggestion.
type SuggestionStatus string

const (
	SuggestionStatusPending     SuggestionStatus = "pending"
	SuggestionStatusApproved    SuggestionStatus = "approved"
	SuggestionStatusRejected    SuggestionStatus = "rejected"
	SuggestionStatusAutoMatched SuggestionStatus = "auto_matched"
)

// SourceType identifies which ledger side a suggestion's source record lives on.
type SourceType string

const (
	SourceTypeBill    SourceType = "bill"
	SourceTypeInvoice SourceType = "invoice"
)

// TargetType identifies the kind of record a suggestion proposes to bind.
type TargetType string

const (
	TargetTypePayment TargetType = "payment"
	TargetTypeReceipt TargetType = "receipt"
)

// RiskSeverity grades a detected anomaly.
type RiskSeverity string

const (
	RiskSeverityLow      RiskSeverity = "low"
	RiskSeverityMedium   RiskSeverity = "medium"
	RiskSeverityHigh     RiskSeverity = "high"
	RiskSeverityCritical RiskSeverity = "critical"
)

// RiskFlagStatus represents the triage state of a risk flag.
type RiskFlagStatus string

const (
	RiskFlagStatusOpen          RiskFlagStatus = "open"
	RiskFlagStatusInvestigating RiskFlagStatus = "investigating"
	RiskFlagStatusResolved      RiskFlagStatus = "resolved"
	RiskFlagStatusDismissed     RiskFlagStatus = "dismissed"
)

// TerminalRiskFlagStatuses are the statuses a flag may be resolved into.
var TerminalRiskFlagStatuses = map[RiskFlagStatus]bool{
	RiskFlagStatusResolved:  true,
	RiskFlagStatusDismissed: true,
}

// PeriodType is the granularity of a cash-flow forecast row.
type PeriodType string

const (
	PeriodTypeDaily   PeriodType = "daily"
	PeriodTypeWeekly  PeriodType = "weekly"
	PeriodTypeMonthly PeriodType = "monthly"
)

// FeedbackType labels a human decision recorded for matcher training.
type FeedbackType string

const (
	FeedbackTypeApprove FeedbackType = "approve"
	FeedbackTypeReject  FeedbackType = "reject"
)

// ReconcileScope selects which ledger side a reconciliation run covers.
type ReconcileScope string

const (
	ReconcileScopeAll        ReconcileScope = "all"
	ReconcileScopePayable    ReconcileScope = "payable"
	ReconcileScopeReceivable ReconcileScope = "receivable"
)

// ValidReconcileScopes maps accepted scope values.
var ValidReconcileScopes = map[ReconcileScope]bool{
	ReconcileScopeAll:        true,
	ReconcileScopePayable:    true,
	ReconcileScopeReceivable: true,
}

// DiscountType distinguishes percentage promos from flat-amount promos.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// AgingBucket is a time-since-due classification for open receivables/payables.
type AgingBucket string

const (
	AgingBucketCurrent AgingBucket = "current"
	AgingBucket1To30   AgingBucket = "1-30"
	AgingBucket31To60  AgingBucket = "31-60"
	AgingBucket61To90  AgingBucket = "61-90"
	AgingBucketOver90  AgingBucket = "90+"
)

// AgingBuckets lists the buckets in reporting order.
var AgingBuckets = []AgingBucket{
	AgingBucketCurrent,
	AgingBucket1To30,
	AgingBucket31To60,
	AgingBucket61To90,
	AgingBucketOver90,
}
