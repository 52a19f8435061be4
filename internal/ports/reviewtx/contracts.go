package reviewtx

import (
	"context"

	"github.com/bagami/notify/internal/domain"
)

// Repository is the slice of review persistence that runs inside one transaction:
// recording the review and dropping the rating reminders it supersedes.
type Repository interface {
	InsertReview(ctx context.Context, rv *domain.Review) error
	DeleteRatingReminders(ctx context.Context, reviewerID, deliveryID int64) (int64, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
