// Package notification serves users' in-app notification feeds.
package notification

import (
	"context"
	"time"

	"github.com/bagami/notify/internal/apperr"
	"github.com/bagami/notify/internal/domain"
)

type notificationRepository interface {
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (bool, error)
}

// Service - read and mark-read operations over a user's notifications.
type Service struct {
	repo             notificationRepository
	operationTimeout time.Duration
}

// NewService - creates a new notification Service.
func NewService(repo notificationRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: repo, operationTimeout: timeout}
}

// List returns a user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error) {
	if userID <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()
	return s.repo.ListByUser(ctx, userID, unreadOnly)
}

// MarkRead flags one of the user's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	if id <= 0 || userID <= 0 {
		return apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	ok, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
