package domain

import "time"

// AlertType selects which kinds of deliveries a saved search reacts to.
type AlertType string

// List of possible alert types
const (
	AlertAll      AlertType = "all"
	AlertRequests AlertType = "requests"
	AlertOffers   AlertType = "offers"
)

var allowedAlertTypes = [...]AlertType{AlertAll, AlertRequests, AlertOffers}

// Valid checks if the AlertType is valid.
func (t AlertType) Valid() bool {
	for _, v := range allowedAlertTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Alert is a user's saved search over new deliveries.
// A nil location field means "match any"; a set country with a nil city means
// "match any city in that country".
type Alert struct {
	ID                 int64
	UserID             int64
	Type               AlertType
	DepartureCountry   *string
	DepartureCity      *string
	DestinationCountry *string
	DestinationCity    *string
	IsActive           bool
	CreatedAt          time.Time
}

// Matches reports whether the delivery should notify this alert's owner.
// The owner of the posting never matches their own post.
func (a Alert) Matches(d Delivery) bool {
	if !a.IsActive {
		return false
	}
	if a.UserID == d.SenderID {
		return false
	}
	if !a.wantsType(d.Type) {
		return false
	}
	if !locationMatches(a.DepartureCountry, a.DepartureCity, d.FromCountry, d.FromCity) {
		return false
	}
	return locationMatches(a.DestinationCountry, a.DestinationCity, d.ToCountry, d.ToCity)
}

func (a Alert) wantsType(t DeliveryType) bool {
	switch a.Type {
	case AlertAll:
		return true
	case AlertRequests:
		return t == DeliveryRequest
	case AlertOffers:
		return t == DeliveryOffer
	default:
		return false
	}
}

func locationMatches(wantCountry, wantCity *string, country, city string) bool {
	if wantCountry == nil {
		return true
	}
	if *wantCountry != country {
		return false
	}
	return wantCity == nil || *wantCity == city
}
