package domain

import (
	"strings"
	"time"
)

type (
	// DeliveryType distinguishes delivery requests from travel/space offers.
	DeliveryType string
	// DeliveryStatus represents the lifecycle state of a delivery.
	DeliveryStatus string
)

// List of possible delivery types
const (
	DeliveryRequest DeliveryType = "request"
	DeliveryOffer   DeliveryType = "offer"
)

// List of possible delivery statuses
const (
	StatusPending   DeliveryStatus = "PENDING"
	StatusAccepted  DeliveryStatus = "ACCEPTED"
	StatusDelivered DeliveryStatus = "DELIVERED"
)

var allowedDeliveryTypes = [...]DeliveryType{DeliveryRequest, DeliveryOffer}

var allowedDeliveryStatuses = [...]DeliveryStatus{StatusPending, StatusAccepted, StatusDelivered}

// Valid checks if the DeliveryType is valid.
func (t DeliveryType) Valid() bool {
	for _, v := range allowedDeliveryTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Valid checks if the DeliveryStatus is valid.
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedDeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Delivery represents a delivery request or a travel/space offer posted by a user.
// ReceiverID stays nil until a counterpart accepts the post.
type Delivery struct {
	ID          int64
	Type        DeliveryType
	SenderID    int64
	ReceiverID  *int64
	FromCountry string
	FromCity    string
	ToCountry   string
	ToCity      string
	Status      DeliveryStatus
	DeletedAt   *time.Time
	CreatedAt   time.Time
}

// ValidateRoute reports whether all four route fields are non-blank.
func (d Delivery) ValidateRoute() bool {
	for _, s := range []string{d.FromCountry, d.FromCity, d.ToCountry, d.ToCity} {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}
