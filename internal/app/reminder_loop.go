package app

import (
	"context"
	"errors"
	"time"

	"github.com/bagami/notify/internal/apperr"
	"github.com/bagami/notify/internal/logx"
	"github.com/bagami/notify/internal/service/reminder"
)

// notificationRetention is how long read notifications are kept before the
// housekeeping sweep removes them.
const notificationRetention = 90 * 24 * time.Hour

type notificationJanitor interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type reminderRunner interface {
	Run(ctx context.Context) (reminder.Report, error)
}

// ReminderLoop periodically runs the rating reminder scheduler and sweeps
// old read notifications.
type ReminderLoop struct {
	scheduler reminderRunner
	janitor   notificationJanitor
	interval  time.Duration
	logger    logx.Logger
}

// NewReminderLoop creates a ReminderLoop.
func NewReminderLoop(scheduler reminderRunner, janitor notificationJanitor, interval time.Duration, logger logx.Logger) *ReminderLoop {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ReminderLoop{
		scheduler: scheduler,
		janitor:   janitor,
		interval:  interval,
		logger:    logger,
	}
}

// Run ticks until ctx is canceled. The first pass happens immediately.
func (l *ReminderLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.tick(ctx)
		}
	}
}

func (l *ReminderLoop) tick(ctx context.Context) {
	report, err := l.scheduler.Run(ctx)
	switch {
	case errors.Is(err, apperr.ErrConflict):
		// another instance holds the run lock
		l.logger.Debug("reminder run skipped, lock held elsewhere")
		return
	case err != nil:
		l.logger.Error("reminder run failed", logx.Err(err))
		return
	}
	l.logger.Info("reminder run done",
		logx.Int("reminders_sent", report.RemindersSent),
		logx.Int("failures", len(report.Failures)),
	)

	removed, err := l.janitor.DeleteOlderThan(ctx, time.Now().UTC().Add(-notificationRetention))
	if err != nil {
		l.logger.Error("notification sweep failed", logx.Err(err))
		return
	}
	if removed > 0 {
		l.logger.Info("old notifications removed", logx.Int64("count", removed))
	}
}
