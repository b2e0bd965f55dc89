package event

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"

	pkgkafka "github.com/rickragav/ragav-ecommerce-sass-application/pkg/kafka"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/domain"
)

// Kafka topic constants for product domain events.
const (
	TopicProductCreated = "ecommerce.product.created"
	TopicProductDeleted = "ecommerce.product.deleted"
)

// Aggregate type constant.
const AggregateTypeProduct = "product"

// Source identifier for events originating from the product service.
const SourceProductService = "product-service"

// ProductCreatedData is the payload for a product.created event.
type ProductCreatedData struct {
	ProductID     int              `json:"productId"`
	Name          string           `json:"name"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	StockQuantity *int             `json:"stockQuantity,omitempty"`
	Status        string           `json:"status"`
	TenantID      string           `json:"tenantId,omitempty"`
}

// ProductDeletedData is the payload for a product.deleted event.
type ProductDeletedData struct {
	ProductID int `json:"productId"`
}

// Producer publishes product domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the product service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishProductCreated publishes a product.created event.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	data := ProductCreatedData{
		ProductID:     product.ProductID,
		Name:          product.Name,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		Status:        product.Status,
		TenantID:      product.TenantID,
	}

	event, err := pkgkafka.NewEvent(TopicProductCreated, strconv.Itoa(product.ProductID), AggregateTypeProduct, SourceProductService, data)
	if err != nil {
		return fmt.Errorf("create product.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductCreated, event); err != nil {
		return fmt.Errorf("publish product.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product.created event",
		slog.Int("product_id", product.ProductID),
	)

	return nil
}

// PublishProductDeleted publishes a product.deleted event.
func (p *Producer) PublishProductDeleted(ctx context.Context, productID int) error {
	data := ProductDeletedData{ProductID: productID}

	event, err := pkgkafka.NewEvent(TopicProductDeleted, strconv.Itoa(productID), AggregateTypeProduct, SourceProductService, data)
	if err != nil {
		return fmt.Errorf("create product.deleted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductDeleted, event); err != nil {
		return fmt.Errorf("publish product.deleted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product.deleted event",
		slog.Int("product_id", productID),
	)

	return nil
}
