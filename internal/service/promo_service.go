package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bookkeeper/internal/config"
	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
	"bookkeeper/internal/promo"
)

// ValidatePromoInput carries a promo validation request.
type ValidatePromoInput struct {
	Code             string
	OrderTotal       decimal.Decimal
	PlanCode         string
	JurisdictionCode string
}

// PromoService validates promo codes against the active configuration and
// records redemptions.
type PromoService interface {
	Validate(ctx context.Context, input *ValidatePromoInput) (*promo.Result, error)
	Redeem(ctx context.Context, input *ValidatePromoInput) (*promo.Result, error)
}

type promoService struct {
	promoRepo port.PromoConfigRepository
	cfg       config.PromoConfig
}

// NewPromoService creates a new PromoService implementation.
func NewPromoService(promoRepo port.PromoConfigRepository, cfg config.PromoConfig) PromoService {
	return &promoService{promoRepo: promoRepo, cfg: cfg}
}

func (s *promoService) validate(ctx context.Context, input *ValidatePromoInput) (*promo.Result, error) {
	cfg, err := s.promoRepo.GetActive(ctx, s.cfg.ConfigName)
	if err != nil {
		return nil, fmt.Errorf("promoService: loading config %q: %w", s.cfg.ConfigName, err)
	}
	return promo.Validate(cfg, input.Code, input.OrderTotal, input.PlanCode, input.JurisdictionCode, s.cfg.Currency, time.Now()), nil
}

// Validate checks the code without consuming a use. Inapplicable codes are a
// typed invalid result, not an error.
func (s *promoService) Validate(ctx context.Context, input *ValidatePromoInput) (*promo.Result, error) {
	return s.validate(ctx, input)
}

// Redeem validates and, when valid, consumes one use: the usage counter
// increment and the redemption audit row are written in a single transaction
// by the repository. Invalid codes return the typed result unredeemed. The
// validation pass reads the config outside that transaction, so the cap is
// re-enforced by the guarded increment; losing that race yields an invalid
// result, same as validating an exhausted code.
func (s *promoService) Redeem(ctx context.Context, input *ValidatePromoInput) (*promo.Result, error) {
	result, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return result, nil
	}

	err = s.promoRepo.Redeem(ctx, s.cfg.ConfigName, &domain.PromoRedemption{
		ID:             uuid.New(),
		Code:           result.Promo.Code,
		OrderTotal:     input.OrderTotal,
		DiscountAmount: result.DiscountAmount,
		PlanCode:       input.PlanCode,
		Jurisdiction:   input.JurisdictionCode,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPromoUsageExceeded) {
			log.Printf("promoService.Redeem: code=%s cap exhausted concurrently", result.Promo.Code)
			return &promo.Result{Valid: false, Error: promo.MaxUsesMessage}, nil
		}
		return nil, fmt.Errorf("promoService.Redeem: %w", err)
	}
	log.Printf("promoService.Redeem: code=%s discount=%s", result.Promo.Code, result.DiscountAmount.String())
	return result, nil
}
