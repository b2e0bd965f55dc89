package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/logger"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/app"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("product composite service exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New("product-composite-service", cfg.LogLevel)
	log.Info("starting product composite service",
		slog.String("environment", cfg.Environment),
		slog.Int("http_port", cfg.HTTPPort),
		slog.String("product_service_url", cfg.ProductServiceURL),
		slog.String("review_service_url", cfg.ReviewServiceURL),
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

	log.Info("product composite service stopped")
	return nil
}
