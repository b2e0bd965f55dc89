package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/health"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/middleware"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/service"
)

const serviceName = "product-service"

// NewRouter creates a chi router with all product service routes registered.
func NewRouter(
	productService *service.ProductService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.PrometheusMetrics(serviceName))

	// Health and metrics endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	// Product API endpoints
	productHandler := NewProductHandler(productService, logger)

	r.Route("/product", func(r chi.Router) {
		r.Post("/", productHandler.CreateProduct)
		r.Get("/{productId}", productHandler.GetProduct)
		r.Delete("/{productId}", productHandler.DeleteProduct)
	})

	return r
}
