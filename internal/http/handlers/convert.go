package handlers

import "github.com/bagami/notify/internal/domain"

func (r createDeliveryRequest) toModel() *domain.Delivery {
	return &domain.Delivery{
		Type:        r.Type,
		SenderID:    r.SenderID,
		FromCountry: r.FromCountry,
		FromCity:    r.FromCity,
		ToCountry:   r.ToCountry,
		ToCity:      r.ToCity,
	}
}

func deliveryToResponse(d domain.Delivery) deliveryDTO {
	return deliveryDTO{
		ID:          d.ID,
		Type:        d.Type,
		SenderID:    d.SenderID,
		ReceiverID:  d.ReceiverID,
		FromCountry: d.FromCountry,
		FromCity:    d.FromCity,
		ToCountry:   d.ToCountry,
		ToCity:      d.ToCity,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
	}
}

func (r createAlertRequest) toModel() *domain.Alert {
	return &domain.Alert{
		UserID:             r.UserID,
		Type:               r.Type,
		DepartureCountry:   r.DepartureCountry,
		DepartureCity:      r.DepartureCity,
		DestinationCountry: r.DestinationCountry,
		DestinationCity:    r.DestinationCity,
		IsActive:           true,
	}
}

func alertToResponse(a domain.Alert) alertDTO {
	return alertDTO{
		ID:                 a.ID,
		UserID:             a.UserID,
		Type:               a.Type,
		DepartureCountry:   a.DepartureCountry,
		DepartureCity:      a.DepartureCity,
		DestinationCountry: a.DestinationCountry,
		DestinationCity:    a.DestinationCity,
		IsActive:           a.IsActive,
		CreatedAt:          a.CreatedAt,
	}
}

func alertsToResponse(list []domain.Alert) []alertDTO {
	out := make([]alertDTO, 0, len(list))
	for _, a := range list {
		out = append(out, alertToResponse(a))
	}
	return out
}

func (r createReviewRequest) toModel() *domain.Review {
	return &domain.Review{
		DeliveryID: r.DeliveryID,
		ReviewerID: r.ReviewerID,
		RevieweeID: r.RevieweeID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func notificationToResponse(n domain.Notification) notificationDTO {
	return notificationDTO{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func notificationsToResponse(list []domain.Notification) []notificationDTO {
	out := make([]notificationDTO, 0, len(list))
	for _, n := range list {
		out = append(out, notificationToResponse(n))
	}
	return out
}
