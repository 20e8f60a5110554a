package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"referral-server/internal/bootstrap"
	"referral-server/internal/config"
	"referral-server/internal/observability"
)

// The worker binary runs only the background pieces of the engine: the
// business event consumer and the expiry sweep scheduler. It lets the HTTP
// API scale independently of event processing.
func main() {
	ctx := context.Background()
	logger := observability.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %s", err)
	}
	defer deps.Cleanup()

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Info(workerCtx, "starting background worker")

	go func() {
		if err := deps.EventConsumer.Start(workerCtx); err != nil {
			logger.Error(workerCtx, "event consumer stopped with error", err)
		}
	}()

	go func() {
		if err := deps.Scheduler.Start(workerCtx); err != nil {
			logger.Error(workerCtx, "scheduler stopped with error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(workerCtx, "shutting down worker")
	cancel()
	deps.EventConsumer.Stop()
}
