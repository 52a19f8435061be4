package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bagami/notify/internal/http/handlers"
	mw "github.com/bagami/notify/internal/http/middleware"
	"github.com/bagami/notify/internal/http/middleware/ratelimit"
	"github.com/bagami/notify/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	base *handlers.Handlers,
	del *handlers.DeliveryHandler,
	alerts *handlers.AlertHandler,
	notifs *handlers.NotificationHandler,
	reviews *handlers.ReviewHandler,
	reminders *handlers.ReminderHandler,
	logger logx.Logger,
	limiter *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(mw.Observability(logger))
	if limiter != nil {
		r.Use(limiter.Handler())
	}

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/deliveries", func(r chi.Router) {
		r.Post("/", del.Create)
		r.Get("/{id}", del.GetByID)
	})

	r.Route("/alerts", func(r chi.Router) {
		r.Post("/", alerts.Create)
		r.Get("/", alerts.List)
		r.Delete("/{id}", alerts.Delete)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", notifs.List)
		r.Post("/{id}/read", notifs.MarkRead)
	})

	r.Post("/reviews", reviews.Create)
	r.Post("/reminders/run", reminders.Run)

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
