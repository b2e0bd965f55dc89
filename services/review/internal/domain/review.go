package domain

// Review status constants.
const (
	ReviewStatusActive  = "ACTIVE"
	ReviewStatusPending = "PENDING"
	ReviewStatusHidden  = "HIDDEN"
	ReviewStatusDeleted = "DELETED"
	ReviewStatusSpam    = "SPAM"
)

// MaxReviewTextLength is the longest review text accepted.
const MaxReviewTextLength = 2000

// Review represents a product review. The JSON field names are the wire
// contract consumed by the composite service. ProductID is carried as the
// string form of the numeric product id.
type Review struct {
	ReviewID    string  `json:"reviewId"`
	ProductID   string  `json:"productId"`
	UserID      *int    `json:"userId,omitempty"`
	TenantID    string  `json:"tenantId,omitempty"`
	Rating      int     `json:"rating"`
	ReviewText  string  `json:"reviewText,omitempty"`
	ReviewTitle *string `json:"reviewTitle,omitempty"`
	Status      string  `json:"status,omitempty"`

	// ServiceAddress identifies the instance that served the record. It is
	// assigned by this service on reads and creates, never by callers.
	ServiceAddress string `json:"serviceAddress,omitempty"`
}

// ValidStatuses returns the set of valid review statuses.
func ValidStatuses() []string {
	return []string{
		ReviewStatusActive,
		ReviewStatusPending,
		ReviewStatusHidden,
		ReviewStatusDeleted,
		ReviewStatusSpam,
	}
}

// IsValidStatus checks whether the given status string is a valid review status.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}
