package handlers

import (
	"context"

	"github.com/bagami/notify/internal/domain"
	"github.com/bagami/notify/internal/service/alert"
	"github.com/bagami/notify/internal/service/delivery"
	"github.com/bagami/notify/internal/service/notification"
	"github.com/bagami/notify/internal/service/reminder"
	"github.com/bagami/notify/internal/service/review"
)

type deliveryUsecase interface {
	Create(ctx context.Context, d *domain.Delivery) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
}

// NewDeliveryUsecase wires a delivery Service into a deliveryUsecase.
func NewDeliveryUsecase(svc *delivery.Service) deliveryUsecase {
	return svc
}

type alertUsecase interface {
	Create(ctx context.Context, a *domain.Alert) (int64, error)
	List(ctx context.Context, userID int64) ([]domain.Alert, error)
	Delete(ctx context.Context, id, userID int64) error
}

// NewAlertUsecase wires an alert Service into an alertUsecase.
func NewAlertUsecase(svc *alert.Service) alertUsecase {
	return svc
}

type notificationUsecase interface {
	List(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
}

// NewNotificationUsecase wires a notification Service into a notificationUsecase.
func NewNotificationUsecase(svc *notification.Service) notificationUsecase {
	return svc
}

type reviewUsecase interface {
	Create(ctx context.Context, rv *domain.Review) error
}

// NewReviewUsecase wires a review Service into a reviewUsecase.
func NewReviewUsecase(svc *review.Service) reviewUsecase {
	return svc
}

type reminderUsecase interface {
	Run(ctx context.Context) (reminder.Report, error)
}

// NewReminderUsecase wires a reminder Scheduler into a reminderUsecase.
func NewReminderUsecase(svc *reminder.Scheduler) reminderUsecase {
	return svc
}
