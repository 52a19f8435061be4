package kafka

import (
	"time"
)

// Event is a delivery lifecycle event consumed from Kafka.
type Event struct {
	DeliveryID int64
	Action     string
	CreatedAt  time.Time
}

// EventDTO is the wire form of Event.
type EventDTO struct {
	DeliveryID int64     `json:"delivery_id"`
	Action     string    `json:"action"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to Event.
func ToDomain(dto EventDTO) Event {
	return Event{
		DeliveryID: dto.DeliveryID,
		Action:     dto.Action,
		CreatedAt:  dto.CreatedAt,
	}
}
