package port

import (
	"context"

	"bookkeeper/internal/domain"
)

// PromoConfigRepository reads the active promo configuration document and
// records redemptions. Redeem increments the entry's usage counter and
// appends the redemption row in one transaction.
type PromoConfigRepository interface {
	GetActive(ctx context.Context, name string) (*domain.PromoConfig, error)
	Redeem(ctx context.Context, name string, redemption *domain.PromoRedemption) error
}
