// Package review records ratings and retires the reminders they supersede.
package review

import (
	"context"
	"time"

	"github.com/bagami/notify/internal/apperr"
	"github.com/bagami/notify/internal/domain"
	"github.com/bagami/notify/internal/logx"
	"github.com/bagami/notify/internal/ports/reviewtx"
)

type deliverySource interface {
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
}

// Service - creates reviews. The review insert and the cleanup of the
// reviewer's now-superseded rating reminders happen in one transaction.
type Service struct {
	repo             reviewtx.Runner
	deliveries       deliverySource
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewService - creates a new review Service.
func NewService(repo reviewtx.Runner, deliveries deliverySource, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		deliveries:       deliveries,
		logger:           logger,
		operationTimeout: timeout,
	}
}

// Create validates and stores a review for a delivered delivery.
func (s *Service) Create(ctx context.Context, rv *domain.Review) error {
	if rv == nil || !rv.ValidRating() || rv.ReviewerID <= 0 || rv.RevieweeID <= 0 {
		return apperr.ErrInvalid
	}
	if rv.ReviewerID == rv.RevieweeID {
		return apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	d, err := s.deliveries.Get(ctx, rv.DeliveryID)
	if err != nil {
		return err
	}
	if d == nil {
		return apperr.ErrNotFound
	}
	if d.Status != domain.StatusDelivered || d.ReceiverID == nil {
		return apperr.ErrInvalid
	}
	if !isPair(rv.ReviewerID, rv.RevieweeID, d.SenderID, *d.ReceiverID) {
		return apperr.ErrInvalid
	}

	var removed int64
	err = s.repo.WithTx(ctx, func(tx reviewtx.Repository) error {
		if err := tx.InsertReview(ctx, rv); err != nil {
			return err
		}
		removed, err = tx.DeleteRatingReminders(ctx, rv.ReviewerID, rv.DeliveryID)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("review recorded",
		logx.String("event", "review_recorded"),
		logx.Int64("delivery_id", rv.DeliveryID),
		logx.Int64("reviewer_id", rv.ReviewerID),
		logx.Int64("reminders_removed", removed),
	)
	return nil
}

func isPair(a, b, sender, receiver int64) bool {
	return (a == sender && b == receiver) || (a == receiver && b == sender)
}
