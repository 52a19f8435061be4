package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bagami/notify/internal/apperr"
	"github.com/bagami/notify/internal/domain"
	"github.com/bagami/notify/internal/ports/reviewtx"
)

// ReviewRepo represents the review repository.
type ReviewRepo struct{ db *pgxpool.Pool }

// NewReviewRepo creates a new ReviewRepo.
func NewReviewRepo(db *pgxpool.Pool) *ReviewRepo { return &ReviewRepo{db: db} }

// Exists reports whether a review for (delivery, reviewer, reviewee) is recorded.
func (r *ReviewRepo) Exists(ctx context.Context, deliveryID, reviewerID, revieweeID int64) (bool, error) {
	var found bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM reviews
            WHERE delivery_id = $1 AND reviewer_id = $2 AND reviewee_id = $3
        )
    `, deliveryID, reviewerID, revieweeID).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("review exists (delivery %d): %w", deliveryID, err)
	}
	return found, nil
}

// WithTx opens a transaction and executes fn within it.
func (r *ReviewRepo) WithTx(ctx context.Context, fn func(tx reviewtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &ReviewTxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// ReviewTxRepo represents the transaction-scoped review repository.
type ReviewTxRepo struct {
	tx pgx.Tx
}

// InsertReview - inserts a new review.
func (r *ReviewTxRepo) InsertReview(ctx context.Context, rv *domain.Review) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO reviews (delivery_id, reviewer_id, reviewee_id, rating, comment)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, rv.DeliveryID, rv.ReviewerID, rv.RevieweeID, rv.Rating, rv.Comment).Scan(&rv.ID)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// DeleteRatingReminders drops the reviewer's rating reminders for the delivery,
// whether they were keyed by delivery id or by one of its conversations.
func (r *ReviewTxRepo) DeleteRatingReminders(ctx context.Context, reviewerID, deliveryID int64) (int64, error) {
	ct, err := r.tx.Exec(ctx, `
        DELETE FROM notifications
        WHERE user_id = $1
          AND type = $2
          AND (related_id = $3
            OR related_id IN (SELECT id FROM conversations WHERE delivery_id = $3))
    `, reviewerID, domain.NotificationRatingReminder, deliveryID)
	if err != nil {
		return 0, fmt.Errorf("delete rating reminders (delivery %d): %w", deliveryID, err)
	}
	return ct.RowsAffected(), nil
}
