package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prperemyshlev/healthtrack-smoke/internal/client"
	"github.com/prperemyshlev/healthtrack-smoke/internal/config"
	"github.com/prperemyshlev/healthtrack-smoke/internal/smoke"
	"github.com/prperemyshlev/healthtrack-smoke/pkg/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := observability.InitLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	api := client.New(cfg.Smoke, logger)
	runner := smoke.NewRunner(api, cfg.Smoke, smoke.NewReporter(os.Stdout), logger)

	code := runner.Execute(ctx)

	stop()
	_ = observability.Shutdown(context.Background(), nil, logger)
	os.Exit(code)
}
