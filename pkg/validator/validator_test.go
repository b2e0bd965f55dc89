package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createReviewRequest struct {
	ProductID  int    `json:"productId" validate:"required,gte=1"`
	ReviewID   string `json:"reviewId" validate:"required"`
	ReviewText string `json:"reviewText" validate:"max=2000"`
	Rating     int    `json:"rating" validate:"gte=0,lte=10"`
}

func TestValidateOK(t *testing.T) {
	req := createReviewRequest{ProductID: 1, ReviewID: "r-1", ReviewText: "good", Rating: 5}
	assert.NoError(t, Validate(req))
}

func TestValidateFields(t *testing.T) {
	req := createReviewRequest{ProductID: 0, Rating: 11}
	err := Validate(req)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Contains(t, fields, "ProductID")
	assert.Contains(t, fields, "ReviewID")
	assert.Equal(t, "must be less than or equal to 10", fields["Rating"])
}

func TestDecodeAndValidate(t *testing.T) {
	body := `{"productId": 1, "reviewId": "r-1", "rating": 4}`
	r := httptest.NewRequest(http.MethodPost, "/review", strings.NewReader(body))

	var req createReviewRequest
	require.NoError(t, DecodeAndValidate(r, &req))
	assert.Equal(t, 1, req.ProductID)
	assert.Equal(t, "r-1", req.ReviewID)
}

func TestDecodeAndValidateMalformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/review", strings.NewReader("{not json"))

	var req createReviewRequest
	err := DecodeAndValidate(r, &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request body")
}
