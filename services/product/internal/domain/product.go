package domain

import (
	"github.com/shopspring/decimal"
)

// Product status constants.
const (
	ProductStatusAvailable    = "AVAILABLE"
	ProductStatusOutOfStock   = "OUT_OF_STOCK"
	ProductStatusDiscontinued = "DISCONTINUED"
	ProductStatusComingSoon   = "COMING_SOON"
)

// Product represents a product in the catalog. The JSON field names are the
// wire contract consumed by the composite service.
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

	// ServiceAddress identifies the instance that served the record. It is
	// assigned by this service on reads and creates, never by callers.
	ServiceAddress string `json:"serviceAddress,omitempty"`
}

// ValidStatuses returns the set of valid product statuses.
func ValidStatuses() []string {
	return []string{
		ProductStatusAvailable,
		ProductStatusOutOfStock,
		ProductStatusDiscontinued,
		ProductStatusComingSoon,
	}
}

// IsValidStatus checks whether the given status string is a valid product status.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
