package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/database"
	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/review/internal/domain"
	"github.com/rickragav/ragav-ecommerce-sass-application/services/review/internal/repository"
)

// ReviewRepository implements repository.ReviewRepository using PostgreSQL.
type ReviewRepository struct {
	db database.DBTX
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(db database.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review into the database.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (review_id, product_id, user_id, tenant_id, rating, review_text, review_title, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	ctx, end := database.TraceQuery(ctx, "CreateReview", query)
	_, err := r.db.Exec(ctx, query,
		review.ReviewID,
		review.ProductID,
		review.UserID,
		review.TenantID,
		review.Rating,
		review.ReviewText,
		review.ReviewTitle,
		review.Status,
	)
	end(err)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateKey
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// GetByReviewID retrieves a single review by its review ID.
func (r *ReviewRepository) GetByReviewID(ctx context.Context, reviewID string) (*domain.Review, error) {
	query := `
		SELECT review_id, product_id, user_id, tenant_id, rating, review_text, review_title, status
		FROM reviews
		WHERE review_id = $1`

	var review domain.Review

	ctx, end := database.TraceQuery(ctx, "GetReview", query)
	err := r.db.QueryRow(ctx, query, reviewID).Scan(
		&review.ReviewID,
		&review.ProductID,
		&review.UserID,
		&review.TenantID,
		&review.Rating,
		&review.ReviewText,
		&review.ReviewTitle,
		&review.Status,
	)
	end(err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}

	return &review, nil
}

// ListByProductID returns all reviews for a product, newest first.
func (r *ReviewRepository) ListByProductID(ctx context.Context, productID string) ([]domain.Review, error) {
	query := `
		SELECT review_id, product_id, user_id, tenant_id, rating, review_text, review_title, status
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC`

	ctx, end := database.TraceQuery(ctx, "ListReviews", query)
	rows, err := r.db.Query(ctx, query, productID)
	end(err)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ReviewID,
			&review.ProductID,
			&review.UserID,
			&review.TenantID,
			&review.Rating,
			&review.ReviewText,
			&review.ReviewTitle,
			&review.Status,
		); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

// DeleteByProductID removes all reviews for a product.
func (r *ReviewRepository) DeleteByProductID(ctx context.Context, productID string) (int64, error) {
	query := `DELETE FROM reviews WHERE product_id = $1`

	ctx, end := database.TraceQuery(ctx, "DeleteReviews", query)
	ct, err := r.db.Exec(ctx, query, productID)
	end(err)
	if err != nil {
		return 0, fmt.Errorf("delete reviews: %w", err)
	}

	return ct.RowsAffected(), nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
