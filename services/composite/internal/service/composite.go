package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/domain"
)

// placeholderUserID is stamped on reviews created through the composite until
// a user service exists.
const placeholderUserID = 1

// placeholderUser is the display name used for every review in an aggregate
// until a user service exists.
const placeholderUser = "user"

// ProductGateway is the composite's view of the product store.
type ProductGateway interface {
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int) error
}

// ReviewGateway is the composite's view of the review store. GetReviews is
// best-effort and never returns an error.
type ReviewGateway interface {
	GetReviews(ctx context.Context, productID int) []domain.Review
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	DeleteReviews(ctx context.Context, productID int) error
}

// CompositeService composes the product and review stores into a single
// caller-facing aggregate API.
type CompositeService struct {
	products       ProductGateway
	reviews        ReviewGateway
	serviceAddress string
	logger         *slog.Logger
}

// NewCompositeService creates a new composite service. serviceAddress
// identifies this composite instance in aggregate responses.
func NewCompositeService(products ProductGateway, reviews ReviewGateway, serviceAddress string, logger *slog.Logger) *CompositeService {
	return &CompositeService{
		products:       products,
		reviews:        reviews,
		serviceAddress: serviceAddress,
		logger:         logger,
	}
}

// GetProduct returns the aggregate view of a product and its reviews. The
// product fetch is authoritative: its failure fails the call and reviews are
// not fetched. The review fetch is best-effort enrichment.
func (s *CompositeService) GetProduct(ctx context.Context, productID int) (*domain.ProductAggregate, error) {
	if productID < 1 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid productId: %d", productID))
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	reviews := s.reviews.GetReviews(ctx, productID)

	return s.buildAggregate(product, reviews), nil
}

// CreateProduct creates the product and then its reviews, sequentially,
// aborting on the first failure. Every failure surfaces to the caller as a
// single BadRequest.
func (s *CompositeService) CreateProduct(ctx context.Context, aggregate *domain.ProductAggregate) error {
	product := &domain.Product{
		ProductID:      aggregate.ProductID,
		Name:           aggregate.Name,
		Price:          aggregate.Price,
		StockQuantity:  aggregate.StockQuantity,
		Status:         aggregate.Status,
		TenantID:       aggregate.TenantID,
		ImageURLSmall:  aggregate.ImageURLSmall,
		ImageURLMedium: aggregate.ImageURLMedium,
		ImageURLLarge:  aggregate.ImageURLLarge,
	}

	if _, err := s.products.CreateProduct(ctx, product); err != nil {
		return flattenCreateError(err)
	}

	userID := placeholderUserID
	for _, summary := range aggregate.Reviews {
		review := &domain.Review{
			ReviewID:    summary.ReviewID,
			ProductID:   strconv.Itoa(aggregate.ProductID),
			UserID:      &userID,
			TenantID:    aggregate.TenantID,
			Rating:      summary.Rating,
			ReviewText:  summary.ReviewContent,
			ReviewTitle: summary.ReviewTitle,
		}
		if _, err := s.reviews.CreateReview(ctx, review); err != nil {
			return flattenCreateError(err)
		}
	}

	s.logger.InfoContext(ctx, "product aggregate created",
		slog.Int("product_id", aggregate.ProductID),
		slog.Int("reviews", len(aggregate.Reviews)),
	)

	return nil
}

// DeleteProduct removes the reviews for a product and then the product
// itself, propagating the first failure. Both deletes are idempotent
// upstream, so a partial failure can be retried safely.
func (s *CompositeService) DeleteProduct(ctx context.Context, productID int) error {
	if productID < 1 {
		return apperrors.InvalidInput(fmt.Sprintf("Invalid productId: %d", productID))
	}

	if err := s.reviews.DeleteReviews(ctx, productID); err != nil {
		return err
	}
	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "product aggregate deleted",
		slog.Int("product_id", productID),
	)

	return nil
}

// buildAggregate projects the product and its reviews into the caller-facing
// aggregate shape.
func (s *CompositeService) buildAggregate(product *domain.Product, reviews []domain.Review) *domain.ProductAggregate {
	summaries := make([]domain.ReviewSummary, 0, len(reviews))
	reviewAddress := ""
	for _, review := range reviews {
		if reviewAddress == "" {
			reviewAddress = review.ServiceAddress
		}
		summaries = append(summaries, domain.ReviewSummary{
			ReviewID:      review.ReviewID,
			User:          placeholderUser,
			ReviewTitle:   review.ReviewTitle,
			ReviewContent: review.ReviewText,
			Rating:        review.Rating,
		})
	}

	return &domain.ProductAggregate{
		ProductID:      product.ProductID,
		Name:           product.Name,
		Price:          product.Price,
		StockQuantity:  product.StockQuantity,
		Status:         product.Status,
		TenantID:       product.TenantID,
		ImageURLSmall:  product.ImageURLSmall,
		ImageURLMedium: product.ImageURLMedium,
		ImageURLLarge:  product.ImageURLLarge,
		Reviews:        summaries,
		ServiceAddresses: domain.ServiceAddresses{
			ProductCatalogService: s.serviceAddress,
			ProductService:        product.ServiceAddress,
			ReviewService:         reviewAddress,
		},
	}
}

// flattenCreateError collapses any upstream create failure into a single
// BadRequest carrying the upstream message.
func flattenCreateError(err error) error {
	return apperrors.BadRequest(fmt.Sprintf("Invalid request: %s", apperrors.Message(err)))
}
