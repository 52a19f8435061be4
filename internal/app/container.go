package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/bagami/notify/internal/config"
	"github.com/bagami/notify/internal/http/handlers"
	"github.com/bagami/notify/internal/http/pprofserver"
	"github.com/bagami/notify/internal/http/router"
	"github.com/bagami/notify/internal/lock"
	"github.com/bagami/notify/internal/logx"
	"github.com/bagami/notify/internal/metrics"
	"github.com/bagami/notify/internal/notifytext"
	"github.com/bagami/notify/internal/repository"
	"github.com/bagami/notify/internal/service/alert"
	"github.com/bagami/notify/internal/service/delivery"
	"github.com/bagami/notify/internal/service/match"
	"github.com/bagami/notify/internal/service/notification"
	"github.com/bagami/notify/internal/service/reminder"
	"github.com/bagami/notify/internal/service/review"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	migrate   func(string) error
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		migrate:   repository.Migrate,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn func(string) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func provideNamed(container *dig.Container, name string, provider any) error {
	if err := container.Provide(provider, dig.Name(name)); err != nil {
		return fmt.Errorf("provide %q: %w", name, err)
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		config.Load,
		NewLogger,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
	migrate func(string) error,
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrate(cfg.DB.DSN()); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pool, nil
	}
	providerLocker := func(client *redis.Client) lock.Locker {
		if client == nil {
			return lock.NopLocker{}
		}
		return lock.NewRedisLocker(client)
	}
	return provideAll(container, providerDB, newRedisClient, providerLocker)
}

type matchIn struct {
	dig.In
	Alerts  *repository.AlertRepo
	Notifs  *repository.NotificationRepo
	Locales notifytext.Resolver
	Logger  logx.Logger
	Matches prometheus.Counter `name:"alert_matches_total"`
	Timeout time.Duration
}

type schedulerIn struct {
	dig.In
	Cfg           *config.Config
	Deliveries    *repository.DeliveryRepo
	Conversations *repository.ConversationRepo
	Reviews       *repository.ReviewRepo
	Notifications *repository.NotificationRepo
	Users         *repository.UserRepo
	Locales       notifytext.Resolver
	Locker        lock.Locker
	Logger        logx.Logger
	Sent          prometheus.Counter `name:"reminders_sent_total"`
	Failed        prometheus.Counter `name:"reminder_run_failures_total"`
}

func registerService(container *dig.Container) error {
	if err := provideNamed(container, "alert_matches_total", metrics.NewAlertMatchesTotal); err != nil {
		return err
	}
	if err := provideNamed(container, "reminders_sent_total", metrics.NewRemindersSentTotal); err != nil {
		return err
	}
	if err := provideNamed(container, "reminder_run_failures_total", metrics.NewReminderRunFailuresTotal); err != nil {
		return err
	}
	return provideAll(container,
		repository.NewAlertRepo,
		repository.NewDeliveryRepo,
		repository.NewConversationRepo,
		repository.NewReviewRepo,
		repository.NewNotificationRepo,
		repository.NewUserRepo,
		func() time.Duration { return 3 * time.Second },
		func(users *repository.UserRepo, cfg *config.Config) notifytext.Resolver {
			return notifytext.NewUserResolver(users, cfg.DefaultLocale)
		},
		func(in matchIn) *match.Service {
			return match.NewService(in.Alerts, in.Notifs, in.Locales, in.Logger, in.Matches, in.Timeout)
		},
		func(repo *repository.DeliveryRepo, m *match.Service, logger logx.Logger, timeout time.Duration) *delivery.Service {
			return delivery.NewService(repo, m, logger, timeout)
		},
		func(repo *repository.AlertRepo, timeout time.Duration) *alert.Service {
			return alert.NewService(repo, timeout)
		},
		func(repo *repository.NotificationRepo, timeout time.Duration) *notification.Service {
			return notification.NewService(repo, timeout)
		},
		func(repo *repository.ReviewRepo, deliveries *repository.DeliveryRepo, logger logx.Logger, timeout time.Duration) *review.Service {
			return review.NewService(repo, deliveries, logger, timeout)
		},
		func(in schedulerIn) *reminder.Scheduler {
			return reminder.NewScheduler(
				in.Deliveries, in.Conversations, in.Reviews, in.Notifications, in.Users,
				in.Locales, in.Locker, in.Cfg.Reminder.LockTTL, in.Logger, in.Sent, in.Failed,
			)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	pprofProvider := func(cfg *config.Config) *http.Server {
		if cfg.Pprof.Addr == "" {
			return nil
		}
		return &http.Server{
			Addr:              cfg.Pprof.Addr,
			Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	if err := provideNamed(container, "rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal); err != nil {
		return err
	}
	if err := provideNamed(container, "pprof_server", pprofProvider); err != nil {
		return err
	}
	return provideAll(container,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		handlers.New,
		handlers.NewDeliveryUsecase,
		handlers.NewDeliveryHandler,
		handlers.NewAlertUsecase,
		handlers.NewAlertHandler,
		handlers.NewNotificationUsecase,
		handlers.NewNotificationHandler,
		handlers.NewReviewUsecase,
		handlers.NewReviewHandler,
		handlers.NewReminderUsecase,
		handlers.NewReminderHandler,
		router.New,
		serverProvider,
	)
}
