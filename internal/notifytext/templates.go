// Package notifytext generates the {title, message} pairs of in-app
// notifications from fixed per-locale templates. It is pure: no I/O, no state.
package notifytext

import (
	"fmt"
	"strings"

	"github.com/bagami/notify/internal/domain"
)

// Content is a rendered notification text pair.
type Content struct {
	Title   string
	Message string
}

type catalog struct {
	alertRequestTitle string
	alertOfferTitle   string
	reminderTitle     string
	reminderMessage   string
	hours             map[int]string
	hoursFallback     string
}

var catalogs = map[string]catalog{
	"en": {
		alertRequestTitle: "New matching request",
		alertOfferTitle:   "New matching offer",
		reminderTitle:     "Rate your experience",
		reminderMessage:   "Your delivery with {name} was completed {time} ago. Take a moment to leave them a review.",
		hours: map[int]string{
			3:   "3 hours",
			24:  "24 hours",
			48:  "2 days",
			96:  "4 days",
			168: "7 days",
		},
		hoursFallback: "%d hours",
	},
	"fr": {
		alertRequestTitle: "Nouvelle demande correspondante",
		alertOfferTitle:   "Nouvelle offre correspondante",
		reminderTitle:     "Évaluez votre expérience",
		reminderMessage:   "Votre livraison avec {name} a été terminée il y a {time}. Prenez un moment pour laisser un avis.",
		hours: map[int]string{
			3:   "3 heures",
			24:  "24 heures",
			48:  "2 jours",
			96:  "4 jours",
			168: "7 jours",
		},
		hoursFallback: "%d heures",
	},
}

func lookup(locale string) catalog {
	if c, ok := catalogs[Normalize(locale)]; ok {
		return c
	}
	return catalogs["en"]
}

// AlertMatch renders the notification for a delivery matching a saved alert.
// The title is localized; the route message is data, not vocabulary, so it
// stays the same in every locale.
func AlertMatch(locale string, d domain.Delivery) Content {
	c := lookup(locale)
	title := c.alertRequestTitle
	if d.Type == domain.DeliveryOffer {
		title = c.alertOfferTitle
	}
	return Content{
		Title:   title,
		Message: fmt.Sprintf("%s, %s → %s, %s", d.FromCity, d.FromCountry, d.ToCity, d.ToCountry),
	}
}

// RatingReminder renders the reminder sent when a user has not yet rated the
// counterparty some hours after delivery confirmation.
func RatingReminder(locale string, hours int, counterparty string) Content {
	c := lookup(locale)
	msg := strings.NewReplacer(
		"{time}", c.elapsed(hours),
		"{name}", counterparty,
	).Replace(c.reminderMessage)
	return Content{Title: c.reminderTitle, Message: msg}
}

// elapsed maps ladder hours to human text; the fixed ladder never produces
// other values, the fallback is defensive.
func (c catalog) elapsed(hours int) string {
	if s, ok := c.hours[hours]; ok {
		return s
	}
	return fmt.Sprintf(c.hoursFallback, hours)
}
