package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/health"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/httpclient"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/serviceutil"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/tracing"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/client"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/config"
	handler "github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/handler/http"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/service"
)

// App wires together all dependencies and runs the composite service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "product-composite",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// HTTP client for upstream calls. Retries are off by default so the
	// composite surfaces upstream failures promptly; POSTs are never retried
	// regardless.
	baseClient := httpclient.New(httpclient.Config{
		Timeout:         time.Duration(cfg.ClientTimeoutSeconds) * time.Second,
		MaxRetries:      cfg.ClientMaxRetries,
		RetryWaitMin:    500 * time.Millisecond,
		RetryWaitMax:    5 * time.Second,
		MaxConnsPerHost: 100,
	})

	var upstreamClient httpclient.Doer = baseClient
	if cfg.CBEnabled {
		cbCfg := httpclient.CircuitBreakerConfig{
			Name:         "composite-upstream",
			MaxRequests:  cfg.CBMaxRequests,
			Interval:     time.Duration(cfg.CBInterval) * time.Second,
			Timeout:      time.Duration(cfg.CBTimeout) * time.Second,
			FailureRatio: cfg.CBFailureRatio,
			MinRequests:  cfg.CBMinRequests,
		}
		upstreamClient = httpclient.NewCircuitBreakerClient(baseClient, cbCfg, logger)
		logger.Info("circuit breaker initialized",
			slog.String("name", cbCfg.Name),
			slog.Uint64("max_requests", uint64(cbCfg.MaxRequests)),
			slog.Int("timeout_seconds", cfg.CBTimeout),
		)
	}

	// Build the dependency graph.
	productClient := client.NewProductClient(cfg.ProductServiceURL, upstreamClient, logger)
	reviewClient := client.NewReviewClient(cfg.ReviewServiceURL, upstreamClient, logger)
	compositeService := service.NewCompositeService(
		productClient,
		reviewClient,
		serviceutil.InstanceAddress(cfg.HTTPPort),
		logger,
	)

	// Health checks. The product store is authoritative for every aggregate
	// operation; the review store is best-effort enrichment, so its outage
	// does not fail readiness.
	healthHandler := health.NewHandler()
	healthHandler.Register("product-service", upstreamCheck(baseClient, cfg.ProductServiceURL))
	healthHandler.RegisterNonCritical("review-service", upstreamCheck(baseClient, cfg.ReviewServiceURL))

	// HTTP router.
	router := handler.NewRouter(compositeService, healthHandler, logger)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// upstreamCheck probes an upstream service's liveness endpoint.
func upstreamCheck(c *httpclient.Client, baseURL string) health.Checker {
	return func(ctx context.Context) error {
		resp, err := c.Get(ctx, baseURL+"/health/live")
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("upstream liveness returned status %d", resp.StatusCode)
		}
		return nil
	}
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components: drain the HTTP server, then
// flush pending spans.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
