package handlers

import (
	"time"

	"github.com/bagami/notify/internal/domain"
)

type createDeliveryRequest struct {
	Type        domain.DeliveryType `json:"type"`
	SenderID    int64               `json:"sender_id"`
	FromCountry string              `json:"from_country"`
	FromCity    string              `json:"from_city"`
	ToCountry   string              `json:"to_country"`
	ToCity      string              `json:"to_city"`
}

type deliveryDTO struct {
	ID          int64                 `json:"id"`
	Type        domain.DeliveryType   `json:"type"`
	SenderID    int64                 `json:"sender_id"`
	ReceiverID  *int64                `json:"receiver_id,omitempty"`
	FromCountry string                `json:"from_country"`
	FromCity    string                `json:"from_city"`
	ToCountry   string                `json:"to_country"`
	ToCity      string                `json:"to_city"`
	Status      domain.DeliveryStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
}

type createAlertRequest struct {
	UserID             int64            `json:"user_id"`
	Type               domain.AlertType `json:"alert_type"`
	DepartureCountry   *string          `json:"departure_country,omitempty"`
	DepartureCity      *string          `json:"departure_city,omitempty"`
	DestinationCountry *string          `json:"destination_country,omitempty"`
	DestinationCity    *string          `json:"destination_city,omitempty"`
}

type alertDTO struct {
	ID                 int64            `json:"id"`
	UserID             int64            `json:"user_id"`
	Type               domain.AlertType `json:"alert_type"`
	DepartureCountry   *string          `json:"departure_country,omitempty"`
	DepartureCity      *string          `json:"departure_city,omitempty"`
	DestinationCountry *string          `json:"destination_country,omitempty"`
	DestinationCity    *string          `json:"destination_city,omitempty"`
	IsActive           bool             `json:"is_active"`
	CreatedAt          time.Time        `json:"created_at"`
}

type createReviewRequest struct {
	DeliveryID int64  `json:"delivery_id"`
	ReviewerID int64  `json:"reviewer_id"`
	RevieweeID int64  `json:"reviewee_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type notificationDTO struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RelatedID int64     `json:"related_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type reminderRunResponse struct {
	Success       bool     `json:"success"`
	RemindersSent int      `json:"reminders_sent"`
	Errors        []string `json:"errors,omitempty"`
}
