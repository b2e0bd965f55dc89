package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/httputil"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/review/internal/domain"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/review/internal/service"
)

// ReviewHandler handles HTTP requests for review endpoints.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateReview handles POST /review.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		httputil.WriteError(w, r, apperrors.BadRequest(fmt.Sprintf("Invalid request: %s", err.Error())))
		return
	}

	created, err := h.service.CreateReview(r.Context(), &review)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, created)
}

// ListReviews handles GET /review?productId={id}.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDQuery(w, r)
	if !ok {
		return
	}

	reviews, err := h.service.GetReviews(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, reviews)
}

// GetReview handles GET /review/{reviewId}.
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewId")

	review, err := h.service.GetReview(r.Context(), reviewID)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, review)
}

// DeleteReviews handles DELETE /review?productId={id}.
func (h *ReviewHandler) DeleteReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteReviews(r.Context(), productID); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// productIDQuery extracts the required productId query parameter.
func (h *ReviewHandler) productIDQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	productID := r.URL.Query().Get("productId")
	if productID == "" {
		httputil.WriteError(w, r, apperrors.BadRequest("Required query parameter 'productId' is missing"))
		return "", false
	}
	return productID, true
}
