// Package promo implements validation of promo codes against the versioned
// promo configuration document. Validation is pure: callers fetch the config
// and pass it in, so the same rules run identically in handlers and tests.
package promo

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bookkeeper/internal/domain"
)

// MaxUsesMessage is the rejection for an exhausted usage cap. Redemption
// reuses it when a concurrent redemption consumes the last remaining use.
const MaxUsesMessage = "Promo code has reached maximum uses"

// Result is the typed outcome of a validation. An inapplicable code is not an
// error condition: callers branch on Valid.
type Result struct {
	Valid          bool                `json:"is_valid"`
	Error          string              `json:"error,omitempty"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	DiscountType   domain.DiscountType `json:"discount_type,omitempty"`
	Promo          *domain.PromoCode   `json:"promo,omitempty"`
}

func invalid(reason string) *Result {
	return &Result{Valid: false, Error: reason}
}

// Validate checks code against cfg and computes the discount for orderTotal.
// Codes match case-insensitively. A blank code means "no promo applied" and
// returns an invalid result with no error message. Rules are checked in a
// fixed order and the first failing rule wins. plan and jurisdiction scoping
// only apply when the promo restricts them AND the caller supplied a value.
func Validate(cfg *domain.PromoConfig, code string, orderTotal decimal.Decimal, planCode, jurisdictionCode, currency string, now time.Time) *Result {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return &Result{Valid: false}
	}

	var match *domain.PromoCode
	for i := range cfg.PromoCodes {
		pc := &cfg.PromoCodes[i]
		if pc.IsActive && strings.EqualFold(pc.Code, trimmed) {
			match = pc
			break
		}
	}
	if match == nil {
		return invalid("Invalid promo code")
	}

	if match.ValidUntil != nil && now.After(*match.ValidUntil) {
		return invalid("Promo code has expired")
	}
	if match.ValidFrom != nil && now.Before(*match.ValidFrom) {
		return invalid("Promo code is not yet active")
	}
	if match.MaxUses != nil && match.CurrentUses >= *match.MaxUses {
		return invalid(MaxUsesMessage)
	}
	if match.MinOrderValue != nil && orderTotal.LessThan(*match.MinOrderValue) {
		return invalid(fmt.Sprintf("Minimum order value is %s %s", currency, match.MinOrderValue.String()))
	}
	if len(match.AppliesToPlans) > 0 && planCode != "" && !containsFold(match.AppliesToPlans, planCode) {
		return invalid("Promo code is not valid for the selected plan")
	}
	if len(match.AppliesToJurisdictions) > 0 && jurisdictionCode != "" && !containsFold(match.AppliesToJurisdictions, jurisdictionCode) {
		return invalid("Promo code is not valid for the selected jurisdiction")
	}

	discount := match.DiscountValue
	if match.DiscountType == domain.DiscountTypePercentage {
		discount = orderTotal.Mul(match.DiscountValue).Div(decimal.NewFromInt(100))
	}

	return &Result{
		Valid:          true,
		DiscountAmount: discount,
		DiscountType:   match.DiscountType,
		Promo:          match,
	}
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
