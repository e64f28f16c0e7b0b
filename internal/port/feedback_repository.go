package port

import (
	"context"

	"bookkeeper/internal/domain"
)

// FeedbackRepository reads the append-only matcher training log. Feedback rows
// are written by SuggestionRepository inside the approve/reject transactions.
type FeedbackRepository interface {
	ListRecent(ctx context.Context, limit int) ([]domain.FeedbackRecord, error)
}
