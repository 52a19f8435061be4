// Package reminder nudges both parties of a delivered delivery to rate each
// other, at a fixed ladder of elapsed-time thresholds after confirmation.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/bagami/notify/internal/apperr"
	"github.com/bagami/notify/internal/domain"
	"github.com/bagami/notify/internal/lock"
	"github.com/bagami/notify/internal/logx"
	"github.com/bagami/notify/internal/notifytext"
)

// ladder is the ascending set of reminder thresholds in hours, measured from
// the delivery's confirmation time. Only the highest threshold already reached
// fires; earlier ones are never back-filled.
var ladder = [...]int{3, 24, 48, 96, 168}

// runLockKey guards against overlapping scheduler runs.
const runLockKey = "bagami:notify:reminder-run"

// Report is the outcome of one scheduler run. Per-delivery failures are
// collected here instead of aborting the run.
type Report struct {
	RemindersSent int      `json:"reminders_sent"`
	Failures      []string `json:"failures,omitempty"`
}

// Scheduler - walks all delivered deliveries and sends at most one rating
// reminder per direction per ladder step.
type Scheduler struct {
	deliveries    DeliverySource
	conversations ConversationSource
	reviews       ReviewSource
	notifications NotificationStore
	users         UserSource
	locales       notifytext.Resolver
	locker        lock.Locker
	lockTTL       time.Duration
	logger        logx.Logger
	sent          counter
	failed        counter
	now           func() time.Time
}

// NewScheduler - creates a new reminder Scheduler.
func NewScheduler(
	deliveries DeliverySource,
	conversations ConversationSource,
	reviews ReviewSource,
	notifications NotificationStore,
	users UserSource,
	locales notifytext.Resolver,
	locker lock.Locker,
	lockTTL time.Duration,
	logger logx.Logger,
	sent, failed counter,
) *Scheduler {
	if locker == nil {
		locker = lock.NopLocker{}
	}
	if lockTTL <= 0 {
		lockTTL = 4 * time.Minute
	}
	return &Scheduler{
		deliveries:    deliveries,
		conversations: conversations,
		reviews:       reviews,
		notifications: notifications,
		users:         users,
		locales:       locales,
		locker:        locker,
		lockTTL:       lockTTL,
		logger:        logger,
		sent:          sent,
		failed:        failed,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithNow overrides the clock. For tests.
func (s *Scheduler) WithNow(now func() time.Time) *Scheduler {
	if now != nil {
		s.now = now
	}
	return s
}

// Run executes one reminder pass. It is safe to invoke repeatedly: reminders
// already sent at the current ladder step are not re-sent, and overlapping
// runs are rejected with apperr.ErrConflict while the run lock is held.
func (s *Scheduler) Run(ctx context.Context) (Report, error) {
	ok, err := s.locker.Acquire(ctx, runLockKey, s.lockTTL)
	if err != nil {
		return Report{}, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return Report{}, fmt.Errorf("reminder run already in progress: %w", apperr.ErrConflict)
	}
	defer func() {
		if err := s.locker.Release(ctx, runLockKey); err != nil {
			s.logger.Warn("release run lock failed", logx.Err(err))
		}
	}()

	deliveries, err := s.deliveries.ListDelivered(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list delivered: %w", err)
	}

	var rep Report
	for _, d := range deliveries {
		sent, err := s.processDelivery(ctx, d)
		rep.RemindersSent += sent
		if err != nil {
			rep.Failures = append(rep.Failures, fmt.Sprintf("delivery %d: %v", d.ID, err))
			if s.failed != nil {
				s.failed.Inc()
			}
			s.logger.Error("reminder processing failed",
				logx.Int64("delivery_id", d.ID),
				logx.Err(err),
			)
		}
	}

	s.logger.Info("reminder run done",
		logx.String("event", "reminder_run_done"),
		logx.Int("deliveries", len(deliveries)),
		logx.Int("reminders_sent", rep.RemindersSent),
		logx.Int("failures", len(rep.Failures)),
	)
	return rep, nil
}

func (s *Scheduler) processDelivery(ctx context.Context, d domain.Delivery) (int, error) {
	if d.ReceiverID == nil {
		return 0, nil
	}
	receiver := *d.ReceiverID
	// self-deliveries cannot be rated
	if d.SenderID == receiver {
		return 0, nil
	}

	confirmedAt, err := s.conversations.LatestConfirmation(ctx, d.ID)
	if err != nil {
		return 0, err
	}
	// never confirmed: the interval cannot be timed
	if confirmedAt == nil {
		return 0, nil
	}
	elapsed := s.now().Sub(*confirmedAt)

	sent := 0
	pairs := [2][2]int64{{d.SenderID, receiver}, {receiver, d.SenderID}}
	for _, pair := range pairs {
		n, err := s.remindDirection(ctx, d, pair[0], pair[1], elapsed)
		if err != nil {
			return sent, err
		}
		sent += n
	}
	return sent, nil
}

// remindDirection handles one rating direction (reviewer → reviewee) and
// returns 1 when a reminder was created.
func (s *Scheduler) remindDirection(ctx context.Context, d domain.Delivery, reviewerID, revieweeID int64, elapsed time.Duration) (int, error) {
	reviewed, err := s.reviews.Exists(ctx, d.ID, reviewerID, revieweeID)
	if err != nil {
		return 0, err
	}
	if reviewed {
		return 0, nil
	}

	threshold, reached := currentThreshold(elapsed)
	if !reached {
		return 0, nil
	}

	relatedID, relatedIDs, err := s.resolveRelated(ctx, d, reviewerID, revieweeID)
	if err != nil {
		return 0, err
	}

	exists, err := s.notifications.ReminderExists(ctx, reviewerID, relatedIDs, threshold)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, nil
	}

	name, err := s.counterpartyName(ctx, revieweeID)
	if err != nil {
		return 0, err
	}

	content := notifytext.RatingReminder(s.locales.Resolve(ctx, reviewerID), threshold, name)
	th := threshold
	n := &domain.Notification{
		UserID:         reviewerID,
		Type:           domain.NotificationRatingReminder,
		Title:          content.Title,
		Message:        content.Message,
		RelatedID:      relatedID,
		ThresholdHours: &th,
	}
	inserted, err := s.notifications.Create(ctx, n)
	if err != nil {
		return 0, err
	}
	// a concurrent run won the insert
	if !inserted {
		return 0, nil
	}

	if s.sent != nil {
		s.sent.Inc()
	}
	s.logger.Info("rating reminder sent",
		logx.String("event", "rating_reminder_sent"),
		logx.Int64("delivery_id", d.ID),
		logx.Int64("user_id", reviewerID),
		logx.Int("threshold_hours", threshold),
	)
	return 1, nil
}

// resolveRelated returns the notification correlation key: the conversation
// between the pair when one exists, the delivery id otherwise. The dedupe
// check looks at both so the key stays stable across runs either way.
func (s *Scheduler) resolveRelated(ctx context.Context, d domain.Delivery, userA, userB int64) (int64, []int64, error) {
	conv, err := s.conversations.FindForDeliveryPair(ctx, d.ID, userA, userB)
	if err != nil {
		return 0, nil, err
	}
	if conv != nil {
		return conv.ID, []int64{conv.ID, d.ID}, nil
	}
	return d.ID, []int64{d.ID}, nil
}

func (s *Scheduler) counterpartyName(ctx context.Context, userID int64) (string, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return fmt.Sprintf("user %d", userID), nil
	}
	return u.Name, nil
}

// currentThreshold returns the highest ladder step already reached, not every
// step crossed: at 30h the 24h reminder fires, never the 3h one.
func currentThreshold(elapsed time.Duration) (int, bool) {
	picked := 0
	for _, h := range ladder {
		if time.Duration(h)*time.Hour <= elapsed {
			picked = h
		}
	}
	return picked, picked != 0
}
