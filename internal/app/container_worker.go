package app

import (
	"context"
	"fmt"

	"go.uber.org/dig"

	"github.com/bagami/notify/internal/config"
	"github.com/bagami/notify/internal/logx"
	"github.com/bagami/notify/internal/repository"
	"github.com/bagami/notify/internal/service/match"
	"github.com/bagami/notify/internal/service/reminder"
	"github.com/bagami/notify/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the DI container for the background worker.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

// MustBuildWorker builds the worker container or exits.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
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
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	consumerProvider := func(
		cfg *config.Config,
		deliveries *repository.DeliveryRepo,
		m *match.Service,
		logger logx.Logger,
	) (*kafka.Consumer, error) {
		return kafka.NewConsumer(
			cfg.Kafka.Brokers,
			cfg.Kafka.GroupID,
			cfg.Kafka.Topic,
			makeDeliveriesKafka(deliveries, m),
			logger,
		)
	}
	loopProvider := func(
		cfg *config.Config,
		scheduler *reminder.Scheduler,
		notifications *repository.NotificationRepo,
		logger logx.Logger,
	) *ReminderLoop {
		return NewReminderLoop(scheduler, notifications, cfg.Reminder.Interval, logger)
	}
	return provideAll(container, consumerProvider, loopProvider)
}
