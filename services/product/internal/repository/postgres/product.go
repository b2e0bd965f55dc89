package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/database"
	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/domain"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/product/internal/repository"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(db database.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product into the database.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (product_id, name, price, stock_quantity, status, tenant_id, image_url_small, image_url_medium, image_url_large)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	ctx, end := database.TraceQuery(ctx, "CreateProduct", query)
	_, err := r.db.Exec(ctx, query,
		p.ProductID,
		p.Name,
		priceValue(p.Price),
		p.StockQuantity,
		p.Status,
		p.TenantID,
		p.ImageURLSmall,
		p.ImageURLMedium,
		p.ImageURLLarge,
	)
	end(err)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateKey
		}
		return fmt.Errorf("insert product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its numeric product ID.
func (r *ProductRepository) GetByID(ctx context.Context, productID int) (*domain.Product, error) {
	query := `
		SELECT product_id, name, price, stock_quantity, status, tenant_id, image_url_small, image_url_medium, image_url_large
		FROM products
		WHERE product_id = $1`

	var (
		p     domain.Product
		price decimal.NullDecimal
	)

	ctx, end := database.TraceQuery(ctx, "GetProduct", query)
	err := r.db.QueryRow(ctx, query, productID).Scan(
		&p.ProductID,
		&p.Name,
		&price,
		&p.StockQuantity,
		&p.Status,
		&p.TenantID,
		&p.ImageURLSmall,
		&p.ImageURLMedium,
		&p.ImageURLLarge,
	)
	end(err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	if price.Valid {
		p.Price = &price.Decimal
	}

	return &p, nil
}

// Delete removes a product by its numeric product ID.
func (r *ProductRepository) Delete(ctx context.Context, productID int) (bool, error) {
	query := `DELETE FROM products WHERE product_id = $1`

	ctx, end := database.TraceQuery(ctx, "DeleteProduct", query)
	ct, err := r.db.Exec(ctx, query, productID)
	end(err)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}

	return ct.RowsAffected() > 0, nil
}

// priceValue unwraps the nullable price for the driver.
func priceValue(price *decimal.Decimal) any {
	if price == nil {
		return nil
	}
	return *price
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
