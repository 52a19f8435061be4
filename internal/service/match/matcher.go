// Package match notifies owners of saved alerts about newly posted deliveries.
package match

import (
	"context"
	"time"

	"github.com/bagami/notify/internal/domain"
	"github.com/bagami/notify/internal/logx"
	"github.com/bagami/notify/internal/notifytext"
)

// Service - evaluates saved alerts against one new delivery and creates one
// alert_match notification per matching alert.
type Service struct {
	alerts           AlertSource
	notifications    NotificationSink
	locales          notifytext.Resolver
	logger           logx.Logger
	matches          counter
	operationTimeout time.Duration
}

// NewService - creates a new alert matching Service.
func NewService(
	alerts AlertSource,
	notifications NotificationSink,
	locales notifytext.Resolver,
	logger logx.Logger,
	matches counter,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		alerts:           alerts,
		notifications:    notifications,
		locales:          locales,
		logger:           logger,
		matches:          matches,
		operationTimeout: timeout,
	}
}

// Notify runs one matching pass for a newly created delivery and returns the
// number of notifications created. Every datastore error is logged and
// swallowed here: creating the delivery must never fail or roll back because
// matching did.
func (s *Service) Notify(ctx context.Context, d domain.Delivery) int {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	alerts, err := s.alerts.ListActive(ctx)
	if err != nil {
		s.logger.Error("alert matching skipped",
			logx.Int64("delivery_id", d.ID),
			logx.Err(err),
		)
		return 0
	}

	created := 0
	for _, a := range alerts {
		if !a.Matches(d) {
			continue
		}

		content := notifytext.AlertMatch(s.locales.Resolve(ctx, a.UserID), d)
		n := &domain.Notification{
			UserID:    a.UserID,
			Type:      domain.NotificationAlertMatch,
			Title:     content.Title,
			Message:   content.Message,
			RelatedID: d.ID,
		}
		inserted, err := s.notifications.Create(ctx, n)
		if err != nil {
			s.logger.Error("alert notification failed",
				logx.Int64("delivery_id", d.ID),
				logx.Int64("alert_id", a.ID),
				logx.Int64("user_id", a.UserID),
				logx.Err(err),
			)
			continue
		}
		if !inserted {
			continue
		}
		created++
		if s.matches != nil {
			s.matches.Inc()
		}
	}

	s.logger.Info("alert matching done",
		logx.String("event", "alert_matching_done"),
		logx.Int64("delivery_id", d.ID),
		logx.Int("notified", created),
	)
	return created
}
