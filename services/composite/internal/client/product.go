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

// ProductClient calls the product store over HTTP and translates its error
// responses into AppErrors.
type ProductClient struct {
	baseURL string
	client  httpclient.Doer
	logger  *slog.Logger
}

// NewProductClient creates a product store client. baseURL is the service
// root, e.g. "http://localhost:7001".
func NewProductClient(baseURL string, client httpclient.Doer, logger *slog.Logger) *ProductClient {
	return &ProductClient{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

// GetProduct fetches a product by id.
func (c *ProductClient) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	url := fmt.Sprintf("%s/product/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build get product request: %w", err)
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("call product service: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.translateError(ctx, resp, "get product")
	}
	defer func() { _ = resp.Body.Close() }()

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("decode product response: %w", err)
	}

	return &product, nil
}

// CreateProduct creates a product in the product store.
func (c *ProductClient) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	body, err := json.Marshal(product)
	if err != nil {
		return nil, fmt.Errorf("marshal product: %w", err)
	}

	url := c.baseURL + "/product"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build create product request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("call product service: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.translateError(ctx, resp, "create product")
	}
	defer func() { _ = resp.Body.Close() }()

	var created domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode created product response: %w", err)
	}

	return &created, nil
}

// DeleteProduct deletes a product by id.
func (c *ProductClient) DeleteProduct(ctx context.Context, productID int) error {
	url := fmt.Sprintf("%s/product/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build delete product request: %w", err)
	}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("call product service: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return c.translateError(ctx, resp, "delete product")
	}
	_ = resp.Body.Close()

	return nil
}

// translateError maps a non-2xx product store response to an AppError.
// Statuses other than 404 and 422 are logged at warn and preserved verbatim.
func (c *ProductClient) translateError(ctx context.Context, resp *http.Response, operation string) error {
	status := resp.StatusCode
	err := httpclient.ParseResponseError(resp, "product-service")

	if status != http.StatusNotFound && status != http.StatusUnprocessableEntity {
		c.logger.WarnContext(ctx, "unexpected product service response",
			slog.String("operation", operation),
			slog.Int("status", status),
			slog.String("message", apperrors.Message(err)),
		)
	}

	return err
}
