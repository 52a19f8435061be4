package domain

import "time"

// List of notification types produced by this service.
const (
	NotificationAlertMatch     = "alert_match"
	NotificationRatingReminder = "rating_reminder"
)

// Notification is an in-app notification row. RelatedID correlates the
// notification with a delivery or a conversation. ThresholdHours is set only
// for rating reminders and tags the ladder step the reminder was sent for.
type Notification struct {
	ID             int64
	UserID         int64
	Type           string
	Title          string
	Message        string
	RelatedID      int64
	ThresholdHours *int
	IsRead         bool
	CreatedAt      time.Time
}
