package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/rickragav/ragav-ecommerce-sass-application/pkg/kafka"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/review/internal/domain"
)

// Kafka topic constants for review domain events.
const (
	TopicReviewCreated  = "ecommerce.review.created"
	TopicReviewsDeleted = "ecommerce.reviews.deleted"
)

// Aggregate type constant.
const AggregateTypeReview = "review"

// Source identifier for events originating from the review service.
const SourceReviewService = "review-service"

// ReviewCreatedData is the payload for a review.created event.
type ReviewCreatedData struct {
	ReviewID  string `json:"reviewId"`
	ProductID string `json:"productId"`
	UserID    *int   `json:"userId,omitempty"`
	TenantID  string `json:"tenantId,omitempty"`
	Rating    int    `json:"rating"`
	Status    string `json:"status"`
}

// ReviewsDeletedData is the payload for a reviews.deleted event.
type ReviewsDeletedData struct {
	ProductID string `json:"productId"`
	Deleted   int64  `json:"deleted"`
}

// Producer publishes review domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the review service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishReviewCreated publishes a review.created event.
func (p *Producer) PublishReviewCreated(ctx context.Context, review *domain.Review) error {
	data := ReviewCreatedData{
		ReviewID:  review.ReviewID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		TenantID:  review.TenantID,
		Rating:    review.Rating,
		Status:    review.Status,
	}

	event, err := pkgkafka.NewEvent(TopicReviewCreated, review.ReviewID, AggregateTypeReview, SourceReviewService, data)
	if err != nil {
		return fmt.Errorf("create review.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewCreated, event); err != nil {
		return fmt.Errorf("publish review.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review.created event",
		slog.String("review_id", review.ReviewID),
		slog.String("product_id", review.ProductID),
	)

	return nil
}

// PublishReviewsDeleted publishes a reviews.deleted event for a bulk delete.
func (p *Producer) PublishReviewsDeleted(ctx context.Context, productID string, deleted int64) error {
	data := ReviewsDeletedData{ProductID: productID, Deleted: deleted}

	event, err := pkgkafka.NewEvent(TopicReviewsDeleted, productID, AggregateTypeReview, SourceReviewService, data)
	if err != nil {
		return fmt.Errorf("create reviews.deleted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewsDeleted, event); err != nil {
		return fmt.Errorf("publish reviews.deleted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published reviews.deleted event",
		slog.String("product_id", productID),
		slog.Int64("deleted", deleted),
	)

	return nil
}
