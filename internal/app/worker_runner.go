package app

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/bagami/notify/internal/logx"
	"github.com/bagami/notify/internal/transport/kafka"
)

// WorkerRunner runs the background worker: the Kafka consumer and the
// reminder loop.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the worker using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

type workerIn struct {
	dig.In
	Ctx      context.Context
	Pool     *pgxpool.Pool
	Logger   logx.Logger
	Consumer *kafka.Consumer
	Loop     *ReminderLoop
	Redis    *redis.Client
}

func workerRun(in workerIn) error {
	defer closeWorker(in.Pool, in.Logger, in.Consumer, in.Redis)

	in.Logger.Info("service-notify-worker started")
	if in.Consumer == nil {
		in.Logger.Warn("kafka not configured, alert matching via events disabled")
	}

	errCh := make(chan error, 2)
	go func() { errCh <- in.Loop.Run(in.Ctx) }()
	go func() { errCh <- in.Consumer.Run(in.Ctx) }()

	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			return err
		}
	}
	return nil
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer, rdb *redis.Client) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
