package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/logger"
	"github.com/rickragav/ragav-ecommerce-sass-application/pkg/validator"
)

// discardRequest builds a request whose context carries a logger that writes
// nowhere, so error tests do not spam the test output.
func discardRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return req.WithContext(logger.NewContext(req.Context(), l))
}

func decodeErrorInfo(t *testing.T, body *bytes.Buffer) ErrorInfo {
	t.Helper()
	var info ErrorInfo
	require.NoError(t, json.Unmarshal(body.Bytes(), &info))
	return info
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]int{"productId": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"productId":1}`, rec.Body.String())
}

func TestWriteErrorNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	req := discardRequest(http.MethodGet, "/product/13")

	WriteError(rec, req, apperrors.NotFound("No product found for productId: 13"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	info := decodeErrorInfo(t, rec.Body)
	assert.Equal(t, "/product/13", info.Path)
	assert.Equal(t, "Not Found", info.Error)
	assert.Equal(t, "No product found for productId: 13", info.Message)
	assert.Equal(t, http.StatusNotFound, info.Status)
	assert.False(t, info.Timestamp.IsZero())
}

func TestWriteErrorInvalidInput(t *testing.T) {
	rec := httptest.NewRecorder()
	req := discardRequest(http.MethodPost, "/review")

	WriteError(rec, req, apperrors.InvalidInput("Invalid productId: -1"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	info := decodeErrorInfo(t, rec.Body)
	assert.Equal(t, "Invalid productId: -1", info.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, info.Status)
}

func TestWriteErrorPreservesUpstreamStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	req := discardRequest(http.MethodGet, "/product-composite/1")

	WriteError(rec, req, apperrors.Unexpected(http.StatusBadGateway, "product service returned status 502"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	info := decodeErrorInfo(t, rec.Body)
	assert.Equal(t, "product service returned status 502", info.Message)
}

func TestWriteValidationError(t *testing.T) {
	type createRequest struct {
		Name string `validate:"required"`
	}
	err := validator.Validate(&createRequest{})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/product", nil)
	WriteValidationError(rec, req, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeErrorInfo(t, rec.Body)
	assert.Contains(t, info.Message, "Name")
	assert.Contains(t, info.Message, "is required")
}

func TestWriteErrorMasksInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := discardRequest(http.MethodGet, "/product/1")

	WriteError(rec, req, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	info := decodeErrorInfo(t, rec.Body)
	assert.Equal(t, "an internal error occurred", info.Message)
}
