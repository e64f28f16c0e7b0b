package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bookkeeper/internal/domain"
	"bookkeeper/internal/port"
)

type suggestionRepo struct {
	db *sqlx.DB
}

// NewSuggestionRepo creates a new PostgreSQL-backed SuggestionRepository.
func NewSuggestionRepo(db *sqlx.DB) port.SuggestionRepository {
	return &suggestionRepo{db: db}
}

func (r *suggestionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AISuggestion, error) {
	var sg domain.AISuggestion
	err := r.db.GetContext(ctx, &sg,
		"SELECT * FROM bookkeeper_ai_suggestions WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("suggestionRepo.GetByID: %w", err)
	}
	return &sg, nil
}

func (r *suggestionRepo) ListByStatus(ctx context.Context, status domain.SuggestionStatus) ([]domain.AISuggestion, error) {
	var suggestions []domain.AISuggestion
	err := r.db.SelectContext(ctx, &suggestions,
		`SELECT * FROM bookkeeper_ai_suggestions WHERE status = $1
		 ORDER BY confidence_score DESC, created_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("suggestionRepo.ListByStatus: %w", err)
	}
	return suggestions, nil
}

// Approve resolves a pending suggestion in one transaction: the suggestion row,
// the payment binding, the source bill/invoice paid marker, and the approve
// feedback row all commit or roll back together. The payment binding is
// guarded on both foreign keys being null, so a payment bound by a concurrent
// reviewer fails the whole transaction instead of being silently overwritten.
func (r *suggestionRepo) Approve(ctx context.Context, params *port.ApproveSuggestionParams) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("suggestionRepo.Approve begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sg, err := lockSuggestion(ctx, tx, params.SuggestionID)
	if err != nil {
		return err
	}
	if sg.Status != domain.SuggestionStatusPending {
		return domain.ErrSuggestionResolved
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookkeeper_ai_suggestions
		 SET status = $1, reviewed_by = $2, reviewed_at = $3, review_notes = $4, updated_at = $3
		 WHERE id = $5`,
		domain.SuggestionStatusApproved, params.ReviewedBy, params.ReviewedAt, params.Notes, sg.ID)
	if err != nil {
		return fmt.Errorf("suggestionRepo.Approve suggestion: %w", err)
	}

	if err := bindPayment(ctx, tx, sg, params); err != nil {
		return err
	}
	if err := markSourcePaid(ctx, tx, sg, params); err != nil {
		return err
	}
	if err := insertFeedback(ctx, tx, sg, domain.FeedbackTypeApprove, ""); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("suggestionRepo.Approve commit: %w", err)
	}
	return nil
}

// Reject resolves a pending suggestion and appends a reject feedback row.
// Bills, invoices, and payments are never touched.
func (r *suggestionRepo) Reject(ctx context.Context, params *port.RejectSuggestionParams) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("suggestionRepo.Reject begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sg, err := lockSuggestion(ctx, tx, params.SuggestionID)
	if err != nil {
		return err
	}
	if sg.Status != domain.SuggestionStatusPending {
		return domain.ErrSuggestionResolved
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookkeeper_ai_suggestions
		 SET status = $1, reviewed_by = $2, reviewed_at = $3, review_notes = $4, updated_at = $3
		 WHERE id = $5`,
		domain.SuggestionStatusRejected, params.ReviewedBy, params.ReviewedAt, params.Reason, sg.ID)
	if err != nil {
		return fmt.Errorf("suggestionRepo.Reject suggestion: %w", err)
	}

	if err := insertFeedback(ctx, tx, sg, domain.FeedbackTypeReject, params.Reason); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("suggestionRepo.Reject commit: %w", err)
	}
	return nil
}

func lockSuggestion(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*domain.AISuggestion, error) {
	var sg domain.AISuggestion
	err := tx.GetContext(ctx, &sg,
		"SELECT * FROM bookkeeper_ai_suggestions WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("locking suggestion: %w", err)
	}
	return &sg, nil
}

func bindPayment(ctx context.Context, tx *sqlx.Tx, sg *domain.AISuggestion, params *port.ApproveSuggestionParams) error {
	column := "bill_id"
	if sg.SourceType == domain.SourceTypeInvoice {
		column = "invoice_id"
	}
	result, err := tx.ExecContext(ctx, fmt.Sprintf(
		`UPDATE bookkeeper_payments SET %s = $1, updated_at = $2
		 WHERE id = $3 AND bill_id IS NULL AND invoice_id IS NULL`, column),
		sg.SourceID, params.ReviewedAt, sg.TargetID)
	if err != nil {
		return fmt.Errorf("binding payment: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM bookkeeper_payments WHERE id = $1)", sg.TargetID); err != nil {
			return fmt.Errorf("checking payment: %w", err)
		}
		if !exists {
			return domain.ErrPaymentNotFound
		}
		return domain.ErrPaymentAlreadyMatched
	}
	return nil
}

func markSourcePaid(ctx context.Context, tx *sqlx.Tx, sg *domain.AISuggestion, params *port.ApproveSuggestionParams) error {
	table, notFound := "bookkeeper_bills", domain.ErrBillNotFound
	if sg.SourceType == domain.SourceTypeInvoice {
		table, notFound = "bookkeeper_invoices", domain.ErrInvoiceNotFound
	}
	result, err := tx.ExecContext(ctx, fmt.Sprintf(
		`UPDATE %s SET is_paid = true, paid_at = $1, status = 'paid', updated_at = $1
		 WHERE id = $2`, table),
		params.ReviewedAt, sg.SourceID)
	if err != nil {
		return fmt.Errorf("marking source paid: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return notFound
	}
	return nil
}

func insertFeedback(ctx context.Context, tx *sqlx.Tx, sg *domain.AISuggestion, ft domain.FeedbackType, reason string) error {
	originalMatch, err := json.Marshal(map[string]interface{}{
		"suggestion_type":  sg.SuggestionType,
		"source_type":      sg.SourceType,
		"source_id":        sg.SourceID,
		"target_type":      sg.TargetType,
		"target_id":        sg.TargetID,
		"confidence_score": sg.ConfidenceScore,
		"match_reasons":    sg.MatchReasons,
	})
	if err != nil {
		return fmt.Errorf("marshaling original match: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO bookkeeper_ai_feedback (id, suggestion_id, feedback_type, feedback_reason, original_match)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), sg.ID, ft, reason, originalMatch)
	if err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}
	return nil
}
