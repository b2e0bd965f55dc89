package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/logger"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/validator"
)

// ErrorInfo is the JSON error body returned by every service. Clients parse
// the message field to relay upstream failure reasons, so its shape is part
// of the wire contract between the services.
type ErrorInfo struct {
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, the error is logged but headers are already sent so nothing can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorInfo body based on the error type. Internal
// failures are logged through the request-scoped logger from context (set by
// the RequestLogger middleware).
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	l := logger.FromContext(r.Context())

	status := apperrors.HTTPStatus(err)
	message := apperrors.Message(err)
	if status == http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		// Do not leak internals in the response body.
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			message = "an internal error occurred"
		}
	}

	WriteJSON(w, status, ErrorInfo{
		Timestamp: time.Now().UTC(),
		Path:      r.URL.Path,
		Error:     http.StatusText(status),
		Message:   message,
		Status:    status,
	})
}

// WriteValidationError writes a 400 ErrorInfo body for a failed request
// validation, with field-level details joined into the message.
func WriteValidationError(w http.ResponseWriter, r *http.Request, err error) {
	message := err.Error()
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		message = valErr.Error()
	}

	WriteJSON(w, http.StatusBadRequest, ErrorInfo{
		Timestamp: time.Now().UTC(),
		Path:      r.URL.Path,
		Error:     http.StatusText(http.StatusBadRequest),
		Message:   message,
		Status:    http.StatusBadRequest,
	})
}
