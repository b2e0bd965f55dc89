package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/domain"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/event"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/repository"
)

// ProductService implements the business logic for product operations.
type ProductService struct {
	repo           repository.ProductRepository
	producer       *event.Producer
	serviceAddress string
	logger         *slog.Logger
}

// NewProductService creates a new product service. serviceAddress identifies
// this instance and is stamped on every product returned to callers.
func NewProductService(repo repository.ProductRepository, producer *event.Producer, serviceAddress string, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:           repo,
		producer:       producer,
		serviceAddress: serviceAddress,
		logger:         logger,
	}
}

// CreateProduct validates and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ProductID < 1 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid productId: %d", product.ProductID))
	}
	if strings.TrimSpace(product.Name) == "" {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid product name: %s", product.Name))
	}
	if product.Status == "" {
		product.Status = domain.ProductStatusAvailable
	}
	if !domain.IsValidStatus(product.Status) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid status: %s. Must be one of: %s", product.Status, strings.Join(domain.ValidStatuses(), ", ")))
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.InvalidInput(fmt.Sprintf("Duplicate key, Product Id: %d", product.ProductID))
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	product.ServiceAddress = s.serviceAddress

	if err := s.producer.PublishProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.created event",
			slog.Int("product_id", product.ProductID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "product created",
		slog.Int("product_id", product.ProductID),
	)

	return product, nil
}

// GetProduct retrieves a product by its numeric ID.
func (s *ProductService) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	if productID < 1 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid productId: %d", productID))
	}

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("No product found for productId: %d", productID))
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	product.ServiceAddress = s.serviceAddress

	return product, nil
}

// DeleteProduct removes a product by its numeric ID. Deleting a product that
// does not exist is not an error, so the operation is safe to retry.
func (s *ProductService) DeleteProduct(ctx context.Context, productID int) error {
	if productID < 1 {
		return apperrors.InvalidInput(fmt.Sprintf("Invalid productId: %d", productID))
	}

	deleted, err := s.repo.Delete(ctx, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !deleted {
		s.logger.WarnContext(ctx, "delete requested for non-existing product",
			slog.Int("product_id", productID),
		)
		return nil
	}

	if err := s.producer.PublishProductDeleted(ctx, productID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.deleted event",
			slog.Int("product_id", productID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product deleted",
		slog.Int("product_id", productID),
	)

	return nil
}
