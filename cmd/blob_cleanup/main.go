// Command blob_cleanup runs one sweep of queued blob deletions and exits.
package main

import (
	"context"
	"fmt"
	"os"

	"churchcms/internal/app"
	"churchcms/internal/config"
	"churchcms/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("startup failed", "error", err)
	}
	defer a.Close()

	deleted, failed := a.CleanupWorker().Sweep(ctx)
	pending, err := a.Outbox.Pending(ctx)
	if err != nil {
		log.Error("count pending deletions failed", "error", err)
	}
	log.Info("blob cleanup completed", "deleted", deleted, "failed", failed, "pending", pending)
}
