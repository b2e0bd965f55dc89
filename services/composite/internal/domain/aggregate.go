package domain

import "github.com/shopspring/decimal"

// Product mirrors the wire shape served by the product store.
type Product struct {
	ProductID      int              `json:"productId"`
	Name           string           `json:"name"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	StockQuantity  *int             `json:"stockQuantity,omitempty"`
	Status         string           `json:"status,omitempty"`
	TenantID       string           `json:"tenantId,omitempty"`
	ImageURLSmall  *string          `json:"imageUrlSmall,omitempty"`
	ImageURLMedium *string          `json:"imageUrlMedium,omitempty"`
	ImageURLLarge  *string          `json:"imageUrlLarge,omitempty"`
	ServiceAddress string           `json:"serviceAddress,omitempty"`
}

// Review mirrors the wire shape served by the review store.
type Review struct {
	ReviewID       string  `json:"reviewId"`
	ProductID      string  `json:"productId"`
	UserID         *int    `json:"userId,omitempty"`
	TenantID       string  `json:"tenantId,omitempty"`
	Rating         int     `json:"rating"`
	ReviewText     string  `json:"reviewText,omitempty"`
	ReviewTitle    *string `json:"reviewTitle,omitempty"`
	Status         string  `json:"status,omitempty"`
	ServiceAddress string  `json:"serviceAddress,omitempty"`
}

// ReviewSummary is the caller-facing projection of a review inside an
// aggregate. The user field is a display name placeholder until a user
// service exists.
type ReviewSummary struct {
	ReviewID      string  `json:"reviewId"`
	User          string  `json:"user"`
	ReviewTitle   *string `json:"reviewTitle,omitempty"`
	ReviewContent string  `json:"reviewContent,omitempty"`
	Rating        int     `json:"rating"`
}

// ServiceAddresses records which instance of each involved service handled
// the aggregate request.
type ServiceAddresses struct {
	ProductCatalogService string `json:"productCatalogService"`
	ProductService        string `json:"productService"`
	ReviewService         string `json:"reviewService,omitempty"`
}

// ProductAggregate is the composed caller-facing view of a product and its
// reviews.
type ProductAggregate struct {
	ProductID        int              `json:"productId"`
	Name             string           `json:"name"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	StockQuantity    *int             `json:"stockQuantity,omitempty"`
	Status           string           `json:"status,omitempty"`
	TenantID         string           `json:"tenantId,omitempty"`
	ImageURLSmall    *string          `json:"imageUrlSmall,omitempty"`
	ImageURLMedium   *string          `json:"imageUrlMedium,omitempty"`
	ImageURLLarge    *string          `json:"imageUrlLarge,omitempty"`
	Reviews          []ReviewSummary  `json:"reviews"`
	ServiceAddresses ServiceAddresses `json:"serviceAddresses"`
}
