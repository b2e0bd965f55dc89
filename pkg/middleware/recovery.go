package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/httputil"
)

// Recovery converts handler panics into a 500 error body so a single bad
// request cannot take the process down. The panic value and stack are logged.
func Recovery(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}

				l.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", p),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorInfo{
					Timestamp: time.Now().UTC(),
					Path:      r.URL.Path,
					Error:     http.StatusText(http.StatusInternalServerError),
					Message:   "an internal error occurred",
					Status:    http.StatusInternalServerError,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
