// Package delivery publishes new delivery posts and fans them out to alerts.
package delivery

import (
	"context"
	"time"

	"github.com/bagami/notify/internal/apperr"
	"github.com/bagami/notify/internal/domain"
	"github.com/bagami/notify/internal/logx"
)

type deliveryRepository interface {
	Create(ctx context.Context, d *domain.Delivery) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
}

// Matcher runs the alert pass for a freshly created post. Its contract is to
// be called exactly once per delivery, right after the insert commits; it
// swallows its own errors.
type Matcher interface {
	Notify(ctx context.Context, d domain.Delivery) int
}

// Service - creates delivery posts.
type Service struct {
	repo             deliveryRepository
	matcher          Matcher
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewService - creates a new delivery Service.
func NewService(repo deliveryRepository, matcher Matcher, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		matcher:          matcher,
		logger:           logger,
		operationTimeout: timeout,
	}
}

// Create validates and stores a new delivery post, then runs the alert
// matching pass once.
func (s *Service) Create(ctx context.Context, d *domain.Delivery) (int64, error) {
	if d == nil || d.SenderID <= 0 || !d.Type.Valid() || !d.ValidateRoute() {
		return 0, apperr.ErrInvalid
	}
	d.Status = domain.StatusPending

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return 0, err
	}
	d.ID = id

	s.logger.Info("delivery posted",
		logx.String("event", "delivery_posted"),
		logx.Int64("delivery_id", id),
		logx.String("type", string(d.Type)),
	)

	notified := s.matcher.Notify(ctx, *d)
	if notified > 0 {
		s.logger.Info("alerts notified",
			logx.Int64("delivery_id", id),
			logx.Int("count", notified),
		)
	}
	return id, nil
}

// Get returns a delivery post by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}
