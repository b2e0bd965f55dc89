package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/httpclient"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/composite/internal/domain"
)

// ReviewClient calls the review store over HTTP and translates its error
// responses into AppErrors.
type ReviewClient struct {
	baseURL string
	client  httpclient.Doer
	logger  *slog.Logger
}

// NewReviewClient creates a review store client. baseURL is the service root,
// e.g. "http://localhost:7003".
func NewReviewClient(baseURL string, client httpclient.Doer, logger *slog.Logger) *ReviewClient {
	return &ReviewClient{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

// GetReviews fetches all reviews for a product. Reviews are best-effort
// enrichment: this method can never fail the caller. Any transport or HTTP
// error is logged and an empty (non-nil) slice returned.
func (c *ReviewClient) GetReviews(ctx context.Context, productID int) []domain.Review {
	url := fmt.Sprintf("%s/review?productId=%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to build get reviews request",
			slog.Int("product_id", productID),
			slog.String("error", err.Error()),
		)
		return []domain.Review{}
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		c.logger.WarnContext(ctx, "review service unreachable, returning no reviews",
			slog.Int("product_id", productID),
			slog.String("error", err.Error()),
		)
		return []domain.Review{}
	}

	if resp.StatusCode != http.StatusOK {
		err := httpclient.ParseResponseError(resp, "review-service")
		c.logger.WarnContext(ctx, "review service error, returning no reviews",
			slog.Int("product_id", productID),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apperrors.Message(err)),
		)
		return []domain.Review{}
	}
	defer func() { _ = resp.Body.Close() }()

	var reviews []domain.Review
	if err := json.NewDecoder(resp.Body).Decode(&reviews); err != nil {
		c.logger.WarnContext(ctx, "failed to decode reviews response, returning no reviews",
			slog.Int("product_id", productID),
			slog.String("error", err.Error()),
		)
		return []domain.Review{}
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	return reviews
}

// CreateReview creates a review in the review store.
func (c *ReviewClient) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	body, err := json.Marshal(review)
	if err != nil {
		return nil, fmt.Errorf("marshal review: %w", err)
	}

	url := c.baseURL + "/review"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build create review request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("call review service: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.translateError(ctx, resp, "create review")
	}
	defer func() { _ = resp.Body.Close() }()

	var created domain.Review
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode created review response: %w", err)
	}

	return &created, nil
}

// DeleteReviews deletes all reviews for a product.
func (c *ReviewClient) DeleteReviews(ctx context.Context, productID int) error {
	url := fmt.Sprintf("%s/review?productId=%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build delete reviews request: %w", err)
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("call review service: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return c.translateError(ctx, resp, "delete reviews")
	}
	_ = resp.Body.Close()

	return nil
}

// translateError maps a non-2xx review store response to an AppError.
// Statuses other than 404 and 422 are logged at warn and preserved verbatim.
func (c *ReviewClient) translateError(ctx context.Context, resp *http.Response, operation string) error {
	status := resp.StatusCode
	err := httpclient.ParseResponseError(resp, "review-service")

	if status != http.StatusNotFound && status != http.StatusUnprocessableEntity {
		c.logger.WarnContext(ctx, "unexpected review service response",
			slog.String("operation", operation),
			slog.Int("status", status),
			slog.String("message", apperrors.Message(err)),
		)
	}

	return err
}
