package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/config"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/gateway/notify"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/http/handlers"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/http/middleware/ratelimit"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/http/router"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/logx"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/metrics"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/repository"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/service/hauliers"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/service/jobs"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/service/matching"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
	worker    bool
}

// NewContainerBuilder returns a new dig container builder for the HTTP service.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// NewWorkerContainerBuilder returns a builder for the Kafka worker.
func NewWorkerContainerBuilder() *ContainerBuilder {
	b := NewContainerBuilder()
	b.worker = true
	return b
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
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
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if b.worker {
		if err := registerWorker(container); err != nil {
			return nil, fmt.Errorf("worker: %w", err)
		}
		return container, nil
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the Kafka worker container.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewWorkerContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewHaulierRepo,
		repository.NewPreferenceRepo,
		func() time.Duration { return 3 * time.Second },
		func(repo *repository.HaulierRepo, timeout time.Duration) *hauliers.Service {
			return hauliers.NewService(repo, timeout)
		},
		func(cfg *config.Config) *matching.Store {
			return matching.NewStoreWithLimit(cfg.Matching.HistoryLimit)
		},
		func(
			store *matching.Store,
			haulierRepo *repository.HaulierRepo,
			prefRepo *repository.PreferenceRepo,
			logger logx.Logger,
		) *matching.Service {
			return matching.NewService(store, logger).
				WithHaulierSource(haulierRepo).
				WithPreferenceSink(prefRepo).
				WithCounters(
					registerCounter(metrics.NewMatchRequestsTotal()),
					registerCounter(metrics.NewHauliersExcludedTotal()),
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
	limiterProvider := func(cfg *config.Config, logger logx.Logger) *ratelimit.Middleware {
		limiter := ratelimit.NewTokenBucketPerWindow(
			nil,
			cfg.Matching.RateLimitPerMinute,
			time.Minute,
			10*time.Minute,
		)
		return ratelimit.New(logger, registerCounter(metrics.NewRateLimitExceededTotal()), limiter)
	}
	return provideAll(container,
		handlers.New,
		handlers.NewMatchUsecase,
		handlers.NewMatchHandler,
		handlers.NewHaulierUsecase,
		handlers.NewHaulierHandler,
		limiterProvider,
		router.New,
		serverProvider,
	)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) (*notify.KafkaNotifier, error) {
			return notify.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.NotifyTopic)
		},
		func(n *notify.KafkaNotifier, logger logx.Logger) jobs.NotifierPort {
			if n == nil {
				return nil
			}
			return notify.NewRetryingNotifier(n, logger,
				registerCounter(metrics.NewNotifyRetriesTotal()),
				notify.RetryConfig{
					MaxAttempts: 4,
					BaseDelay:   150 * time.Millisecond,
					MaxDelay:    2 * time.Second,
				})
		},
		func(svc *matching.Service, notifier jobs.NotifierPort, logger logx.Logger) *jobs.Processor {
			return jobs.NewProcessor(svc, notifier, logger)
		},
		func(cfg *config.Config, p *jobs.Processor, logger logx.Logger) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, p.Handle, logger)
		},
	)
}
