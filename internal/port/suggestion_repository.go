package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookkeeper/internal/domain"
)

// ApproveSuggestionParams carries the data for an approve transaction.
type ApproveSuggestionParams struct {
	SuggestionID uuid.UUID
	ReviewedBy   string
	Notes        string
	ReviewedAt   time.Time
}

// RejectSuggestionParams carries the data for a reject transaction.
type RejectSuggestionParams struct {
	SuggestionID uuid.UUID
	ReviewedBy   string
	Reason       string
	ReviewedAt   time.Time
}

// SuggestionRepository manages AI reconciliation suggestions. Approve and
// Reject run all of their writes inside a single database transaction,
// including the feedback row.
type SuggestionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AISuggestion, error)
	ListByStatus(ctx context.Context, status domain.SuggestionStatus) ([]domain.AISuggestion, error)
	Approve(ctx context.Context, params *ApproveSuggestionParams) error
	Reject(ctx context.Context, params *RejectSuggestionParams) error
}
