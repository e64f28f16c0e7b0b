package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

type promoConfigRepo struct {
	db *sqlx.DB
}

// NewPromoConfigRepo creates a new PostgreSQL-backed PromoConfigRepository.
func NewPromoConfigRepo(db *sqlx.DB) port.PromoConfigRepository {
	return &promoConfigRepo{db: db}
}

func (r *promoConfigRepo) GetActive(ctx context.Context, name string) (*domain.PromoConfig, error) {
	var raw []byte
	err := r.db.GetContext(ctx, &raw,
		"SELECT config_data FROM webflow_configurations WHERE name = $1 AND is_active LIMIT 1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPromoConfigNotFound
		}
		return nil, fmt.Errorf("promoConfigRepo.GetActive: %w", err)
	}

	var cfg domain.PromoConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("promoConfigRepo.GetActive unmarshal: %w", err)
	}
	// Blobs written before versioning carry no schema_version; treat them as v1.
	if cfg.SchemaVersion == 0 {
		cfg.SchemaVersion = domain.PromoConfigSchemaVersion
	}
	if cfg.SchemaVersion != domain.PromoConfigSchemaVersion {
		return nil, domain.ErrPromoConfigVersion
	}
	return &cfg, nil
}

// incrementUsageQuery bumps current_uses on the matching promoCodes entry
// inside the JSONB config blob, located by case-insensitive code. The cap
// guard lives in the locating subquery so the usage cap holds under
// concurrent redemptions: the pure validation pass reads the config outside
// this transaction, and two racers that both saw one use remaining must not
// both consume it.
const incrementUsageQuery = `UPDATE webflow_configurations c
SET config_data = jsonb_set(
		c.config_data,
		ARRAY['promoCodes', m.idx::text, 'current_uses'],
		to_jsonb(COALESCE((m.elem->>'current_uses')::int, 0) + 1),
		true),
	updated_at = now()
FROM (
	SELECT (t.ord - 1)::int AS idx, t.elem AS elem
	FROM webflow_configurations w,
		 jsonb_array_elements(w.config_data->'promoCodes') WITH ORDINALITY AS t(elem, ord)
	WHERE w.name = $1 AND w.is_active AND lower(t.elem->>'code') = lower($2)
	  AND COALESCE((t.elem->>'current_uses')::int, 0) < COALESCE((t.elem->>'max_uses')::int, 2147483647)
	LIMIT 1
) m
WHERE c.name = $1 AND c.is_active`

const activeCodeExistsQuery = `SELECT EXISTS (
	SELECT 1
	FROM webflow_configurations w,
		 jsonb_array_elements(w.config_data->'promoCodes') AS elem
	WHERE w.name = $1 AND w.is_active AND lower(elem->>'code') = lower($2))`

// Redeem increments the promo entry's usage counter and appends the
// redemption audit row in one transaction.
func (r *promoConfigRepo) Redeem(ctx context.Context, name string, redemption *domain.PromoRedemption) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("promoConfigRepo.Redeem begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, incrementUsageQuery, name, redemption.Code)
	if err != nil {
		return fmt.Errorf("promoConfigRepo.Redeem increment: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists, activeCodeExistsQuery, name, redemption.Code); err != nil {
			return fmt.Errorf("promoConfigRepo.Redeem check: %w", err)
		}
		if !exists {
			return domain.ErrPromoConfigNotFound
		}
		return domain.ErrPromoUsageExceeded
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bookkeeper_promo_redemptions (id, code, order_total, discount_amount, plan_code, jurisdiction)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		redemption.ID, redemption.Code, redemption.OrderTotal, redemption.DiscountAmount,
		redemption.PlanCode, redemption.Jurisdiction)
	if err != nil {
		return fmt.Errorf("promoConfigRepo.Redeem insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("promoConfigRepo.Redeem commit: %w", err)
	}
	return nil
}
