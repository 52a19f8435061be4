//go:generate mockgen -source=contracts.go -destination=reminder_mocks_test.go -package=reminder_test

package reminder

import (
	"context"
	"time"

	"github.com/bagami/notify/internal/domain"
)

// DeliverySource lists the deliveries eligible for rating reminders.
type DeliverySource interface {
	ListDelivered(ctx context.Context) ([]domain.Delivery, error)
}

// ConversationSource resolves conversations and confirmation times.
type ConversationSource interface {
	FindForDeliveryPair(ctx context.Context, deliveryID, userA, userB int64) (*domain.Conversation, error)
	LatestConfirmation(ctx context.Context, deliveryID int64) (*time.Time, error)
}

// ReviewSource answers whether one user already rated another for a delivery.
type ReviewSource interface {
	Exists(ctx context.Context, deliveryID, reviewerID, revieweeID int64) (bool, error)
}

// NotificationStore persists reminders and answers dedupe checks.
type NotificationStore interface {
	Create(ctx context.Context, n *domain.Notification) (bool, error)
	ReminderExists(ctx context.Context, userID int64, relatedIDs []int64, thresholdHours int) (bool, error)
}

// UserSource resolves counterparty display names.
type UserSource interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
}

type counter interface {
	Inc()
}
