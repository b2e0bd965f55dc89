package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/httputil"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/domain"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/service"
)

// CompositeHandler handles HTTP requests for the product aggregate endpoints.
type CompositeHandler struct {
	service *service.CompositeService
	logger  *slog.Logger
}

// NewCompositeHandler creates a new composite HTTP handler.
func NewCompositeHandler(svc *service.CompositeService, logger *slog.Logger) *CompositeHandler {
	return &CompositeHandler{
		service: svc,
		logger:  logger,
	}
}

// GetProduct handles GET /product-composite/{productId}.
func (h *CompositeHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDParam(w, r)
	if !ok {
		return
	}

	aggregate, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, aggregate)
}

// CreateProduct handles POST /product-composite.
func (h *CompositeHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var aggregate domain.ProductAggregate
	if err := json.NewDecoder(r.Body).Decode(&aggregate); err != nil {
		httputil.WriteError(w, r, apperrors.BadRequest(fmt.Sprintf("Invalid request: %s", err.Error())))
		return
	}

	if err := h.service.CreateProduct(r.Context(), &aggregate); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteProduct handles DELETE /product-composite/{productId}.
func (h *CompositeHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// productIDParam parses the productId path parameter. A non-numeric value is
// rejected with 400 before the service layer is involved.
func (h *CompositeHandler) productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "productId")
	productID, err := strconv.Atoi(raw)
	if err != nil {
		httputil.WriteError(w, r, apperrors.BadRequest(fmt.Sprintf("Invalid productId format: %s", raw)))
		return 0, false
	}
	return productID, true
}
