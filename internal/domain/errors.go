package domain

import "errors"

var (
	ErrNotFound                 = errors.New("resource not found")
	ErrBillNotFound             = errors.New("bill not found")
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrSuggestionNotFound       = errors.New("suggestion not found")
	ErrSuggestionResolved       = errors.New("suggestion has already been resolved")
	ErrPaymentAlreadyMatched    = errors.New("payment is already bound to a bill or invoice")
	ErrRiskFlagNotFound         = errors.New("risk flag not found")
	ErrRiskFlagClosed           = errors.New("risk flag has already been closed")
	ErrInvalidResolution        = errors.New("invalid risk flag resolution")
	ErrInvalidReconcileScope    = errors.New("invalid reconciliation scope")
	ErrReconciliationInProgress = errors.New("a reconciliation operation is already in progress")
	ErrPromoConfigNotFound      = errors.New("no active promo configuration found")
	ErrPromoConfigVersion       = errors.New("unsupported promo configuration schema version")
	ErrPromoUsageExceeded       = errors.New("promo code usage cap reached")
	ErrMatcherUnavailable       = errors.New("reconciliation gateway unavailable")
)
