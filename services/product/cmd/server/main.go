package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/logger"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/app"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("product service exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New("product-service", cfg.LogLevel)
	log.Info("starting product service",
		slog.String("environment", cfg.Environment),
		slog.Int("http_port", cfg.HTTPPort),
	)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Run(ctx); err != nil {
		return err
	}

	log.Info("product service stopped")
	return nil
}
