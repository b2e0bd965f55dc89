package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/logger"
)

// RequestLogger stores a request-scoped logger in the context, enriched with
// correlation_id, trace_id, and span_id. Handlers retrieve it through
// logger.FromContext.
//
// Mount after RequestLogging (sets correlation_id) and Tracing (sets the
// span context) so both enrichments are visible.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = logger.NewContext(ctx, logger.WithContext(ctx, base))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
