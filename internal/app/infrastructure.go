package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prperemyshlev/healthtrack-smoke/internal/config"
	"github.com/prperemyshlev/healthtrack-smoke/internal/repository"
	"github.com/prperemyshlev/healthtrack-smoke/internal/service"
	"github.com/prperemyshlev/healthtrack-smoke/pkg/observability"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

type Infrastructure interface {
	Repositories() *repository.Repositories
	Logger() *zap.Logger
	Metrics() *observability.StubMetrics
	MetricsHandler() http.Handler

	Shutdown(ctx context.Context) error
}

type infrastructure struct {
	repos          *repository.Repositories
	logger         *zap.Logger
	metrics        *observability.StubMetrics
	metricsHandler http.Handler
	meterProvider  *metric.MeterProvider
}

var _ Infrastructure = &infrastructure{}

// NewInfrastructure builds the stub server's dependencies and seeds the demo account
func NewInfrastructure(ctx context.Context, cfg config.Config) (*infrastructure, error) {
	i := &infrastructure{}

	logger, err := observability.InitLogger(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	i.logger = logger

	meterProvider, metricsHandler, err := observability.InitTelemetry("healthtrack-stub")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	i.meterProvider = meterProvider
	i.metricsHandler = metricsHandler

	metrics, err := observability.NewStubMetrics()
	if err != nil {
		_ = meterProvider.Shutdown(ctx)
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}
	i.metrics = metrics

	i.repos = repository.NewRepositories()
	user, err := service.SeedDemoData(ctx, i.repos, cfg.Stub.Seed, cfg.Stub.BCryptCost, time.Now())
	if err != nil {
		_ = meterProvider.Shutdown(ctx)
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}
	logger.Info("Seeded demo account",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("username", user.Username),
	)

	return i, nil
}

func (i *infrastructure) Repositories() *repository.Repositories {
	return i.repos
}

func (i *infrastructure) Logger() *zap.Logger {
	return i.logger
}

func (i *infrastructure) Metrics() *observability.StubMetrics {
	return i.metrics
}

func (i *infrastructure) MetricsHandler() http.Handler {
	return i.metricsHandler
}

func (i *infrastructure) Shutdown(ctx context.Context) error {
	return observability.Shutdown(ctx, i.meterProvider, i.logger)
}
