package repository

import (
	"context"
	"errors"

	"github.com/rickragav/ragav-ecommerce-sass-application/services/review/internal/domain"
)

// ErrDuplicateKey is returned when an insert violates the unique
// (productId, reviewId) constraint. The service layer maps it to the
// duplicate-key message.
var ErrDuplicateKey = errors.New("duplicate key")

// ReviewRepository defines the interface for review persistence operations.
type ReviewRepository interface {
	// Create inserts a new review into the store.
	Create(ctx context.Context, review *domain.Review) error

	// GetByReviewID retrieves a single review by its review ID.
	GetByReviewID(ctx context.Context, reviewID string) (*domain.Review, error)

	// ListByProductID returns all reviews for a product, newest first. The
	// returned slice is empty, never nil, when the product has no reviews.
	ListByProductID(ctx context.Context, productID string) ([]domain.Review, error)

	// DeleteByProductID removes all reviews for a product and reports how
	// many rows were removed. Deleting for a product without reviews is not
	// an error.
	DeleteByProductID(ctx context.Context, productID string) (int64, error)
}
