package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bagami/notify/internal/domain"
)

// NotificationRepo represents the notification repository.
type NotificationRepo struct{ db *pgxpool.Pool }

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *pgxpool.Pool) *NotificationRepo { return &NotificationRepo{db: db} }

// Create inserts a notification. For tagged rating reminders the partial
// unique index turns a concurrent duplicate into a no-op; the bool reports
// whether a row was actually inserted.
func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) (bool, error) {
	err := r.db.QueryRow(ctx, `
        INSERT INTO notifications (user_id, type, title, message, related_id, threshold_hours, is_read)
        VALUES ($1, $2, $3, $4, $5, $6, FALSE)
        ON CONFLICT DO NOTHING
        RETURNING id, created_at
    `, n.UserID, n.Type, n.Title, n.Message, n.RelatedID, n.ThresholdHours).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("create notification for user %d: %w", n.UserID, err)
	}
	return true, nil
}

// ReminderExists reports whether a rating reminder for the user and any of the
// related ids is already recorded at this ladder step or a later one.
func (r *NotificationRepo) ReminderExists(ctx context.Context, userID int64, relatedIDs []int64, thresholdHours int) (bool, error) {
	var found bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM notifications
            WHERE user_id = $1
              AND type = $2
              AND related_id = ANY($3)
              AND threshold_hours >= $4
        )
    `, userID, domain.NotificationRatingReminder, relatedIDs, thresholdHours).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("reminder exists for user %d: %w", userID, err)
	}
	return found, nil
}

// ListByUser returns a user's notifications, newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error) {
	q := `
        SELECT id, user_id, type, title, message, related_id, threshold_hours, is_read, created_at
        FROM notifications
        WHERE user_id = $1`
	if unreadOnly {
		q += ` AND NOT is_read`
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
			&n.RelatedID, &n.ThresholdHours, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flags a notification of the given user as read; returns true if a
// row was affected.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE notifications SET is_read = TRUE
        WHERE id = $1 AND user_id = $2
    `, id, userID)
	if err != nil {
		return false, fmt.Errorf("mark notification %d read: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// DeleteOlderThan removes read notifications older than the cutoff. Used by
// housekeeping, not by the matching/reminder workflows.
func (r *NotificationRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ct, err := r.db.Exec(ctx, `
        DELETE FROM notifications WHERE is_read AND created_at < $1
    `, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete notifications before %s: %w", cutoff, err)
	}
	return ct.RowsAffected(), nil
}
