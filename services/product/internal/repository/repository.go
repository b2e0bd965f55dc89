package repository

import (
	"context"
	"errors"

	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/domain"
)

// ErrDuplicateKey is returned when an insert violates the unique productId
// constraint. The service layer maps it to the duplicate-key message.
var ErrDuplicateKey = errors.New("duplicate key")

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create inserts a new product into the store.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its numeric product ID.
	GetByID(ctx context.Context, productID int) (*domain.Product, error)

	// Delete removes a product by its numeric product ID. Deleting an absent
	// product is not an error; the returned bool reports whether a row was
	// actually removed.
	Delete(ctx context.Context, productID int) (bool, error)
}
