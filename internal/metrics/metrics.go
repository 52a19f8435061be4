package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// registered puts the counter on the default registry, which is what the
// /metrics handler serves. Container rebuilds re-run the constructors, so a
// counter that is already registered is reused instead of duplicated.
func registered(c prometheus.Counter) prometheus.Counter {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		return are.ExistingCollector.(prometheus.Counter)
	}
	panic(err)
}

// NewAlertMatchesTotal returns a Prometheus counter for alert-match notifications created
func NewAlertMatchesTotal() prometheus.Counter {
	return registered(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alert_matches_total",
		Help: "Total number of alert-match notifications created",
	}))
}

// NewRemindersSentTotal returns a Prometheus counter for rating-reminder notifications created
func NewRemindersSentTotal() prometheus.Counter {
	return registered(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reminders_sent_total",
		Help: "Total number of rating-reminder notifications created",
	}))
}

// NewReminderRunFailuresTotal returns a Prometheus counter for per-delivery failures during reminder runs
func NewReminderRunFailuresTotal() prometheus.Counter {
	return registered(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reminder_run_failures_total",
		Help: "Total number of per-delivery failures during reminder runs",
	}))
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return registered(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	}))
}
