package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/health"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/middleware"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/review/internal/service"
)

const serviceName = "review-service"

// NewRouter creates a chi router with all review service routes registered.
func NewRouter(
	reviewService *service.ReviewService,
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

	// Review API endpoints
	reviewHandler := NewReviewHandler(reviewService, logger)

	r.Route("/review", func(r chi.Router) {
		r.Post("/", reviewHandler.CreateReview)
		r.Get("/", reviewHandler.ListReviews)
		r.Delete("/", reviewHandler.DeleteReviews)
		r.Get("/{reviewId}", reviewHandler.GetReview)
	})

	return r
}
