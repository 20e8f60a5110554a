package main

import (
	"context"
	"log"

	"referral-server/internal/bootstrap"
	"referral-server/internal/config"
	"referral-server/internal/observability"
	"referral-server/internal/server"
)

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

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	serverCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := srv.Start(serverCtx); err != nil {
		log.Fatalf("failed to start server: %s", err)
	}

	if err := srv.WaitForShutdown(serverCtx); err != nil {
		log.Fatalf("shutdown error: %s", err)
	}
}
