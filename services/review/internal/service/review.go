package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/review/internal/domain"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/review/internal/event"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/review/internal/repository"
)

// ReviewService implements the business logic for review operations.
type ReviewService struct {
	repo           repository.ReviewRepository
	producer       *event.Producer
	serviceAddress string
	logger         *slog.Logger
}

// NewReviewService creates a new review service. serviceAddress identifies
// this instance and is stamped on every review returned to callers.
func NewReviewService(repo repository.ReviewRepository, producer *event.Producer, serviceAddress string, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		repo:           repo,
		producer:       producer,
		serviceAddress: serviceAddress,
		logger:         logger,
	}
}

// CreateReview validates and stores a new review.
func (s *ReviewService) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review.Rating < 0 || review.Rating > 10 {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid rating: %d. Rating must be between 0 and 10.", review.Rating))
	}
	if _, err := parseProductID(review.ProductID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(review.ReviewID) == "" {
		return nil, apperrors.InvalidInput("ReviewId cannot be null or empty")
	}
	if len(review.ReviewText) > domain.MaxReviewTextLength {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid reviewText: must not exceed %d characters", domain.MaxReviewTextLength))
	}
	if review.Status == "" {
		review.Status = domain.ReviewStatusActive
	}
	if !domain.IsValidStatus(review.Status) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid status: %s. Must be one of: %s", review.Status, strings.Join(domain.ValidStatuses(), ", ")))
	}

	if err := s.repo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.InvalidInput(fmt.Sprintf("Duplicate key, Product Id: %s, Review Id: %s", review.ProductID, review.ReviewID))
		}
		s.logger.ErrorContext(ctx, "failed to create review",
			slog.String("review_id", review.ReviewID),
			slog.String("product_id", review.ProductID),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.BadRequest("Server Failure while creating review")
	}

	review.ServiceAddress = s.serviceAddress

	if err := s.producer.PublishReviewCreated(ctx, review); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.created event",
			slog.String("review_id", review.ReviewID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "review created",
		slog.String("review_id", review.ReviewID),
		slog.String("product_id", review.ProductID),
	)

	return review, nil
}

// GetReviews returns all reviews for a product. The result is empty, never
// nil, when the product has no reviews.
func (s *ReviewService) GetReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	if _, err := parseProductID(productID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	for i := range reviews {
		reviews[i].ServiceAddress = s.serviceAddress
	}

	return reviews, nil
}

// GetReview retrieves a single review by its review ID.
func (s *ReviewService) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	if strings.TrimSpace(reviewID) == "" {
		return nil, apperrors.InvalidInput("ReviewId cannot be null or empty")
	}

	review, err := s.repo.GetByReviewID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("No review found for reviewId: %s", reviewID))
		}
		return nil, fmt.Errorf("get review by id: %w", err)
	}

	review.ServiceAddress = s.serviceAddress

	return review, nil
}

// DeleteReviews removes all reviews for a product. Deleting for a product
// without reviews is not an error, so the operation is safe to retry.
func (s *ReviewService) DeleteReviews(ctx context.Context, productID string) error {
	if _, err := parseProductID(productID); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByProductID(ctx, productID)
	if err != nil {
		return fmt.Errorf("delete reviews: %w", err)
	}

	if deleted > 0 {
		if err := s.producer.PublishReviewsDeleted(ctx, productID, deleted); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish reviews.deleted event",
				slog.String("product_id", productID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "reviews deleted",
		slog.String("product_id", productID),
		slog.Int64("deleted", deleted),
	)

	return nil
}

// parseProductID validates the string form of the numeric product id.
func parseProductID(productID string) (int, error) {
	id, err := strconv.Atoi(productID)
	if err != nil {
		return 0, apperrors.InvalidInput(fmt.Sprintf("Invalid productId format: %s", productID))
	}
	if id < 1 {
		return 0, apperrors.InvalidInput(fmt.Sprintf("Invalid productId: %d", id))
	}
	return id, nil
}
