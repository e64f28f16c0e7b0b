package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

type feedbackRepo struct {
	db *sqlx.DB
}

// NewFeedbackRepo creates a new PostgreSQL-backed FeedbackRepository.
func NewFeedbackRepo(db *sqlx.DB) port.FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) ListRecent(ctx context.Context, limit int) ([]domain.FeedbackRecord, error) {
	var records []domain.FeedbackRecord
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM bookkeeper_ai_feedback ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("feedbackRepo.ListRecent: %w", err)
	}
	return records, nil
}
