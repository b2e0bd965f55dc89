package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/rickragav/ragav-ecommerce-sass-application/pkg/errors"
)

// DownstreamErrorInfo mirrors the httputil.ErrorInfo body returned by the
// services. Only the message field matters to callers; the rest is ignored.
type DownstreamErrorInfo struct {
	Message string `json:"message"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and translates
// it into an AppError:
//
//	404 -> NotFound, 422 -> InvalidInput, anything else -> Unexpected with the
//	upstream status preserved verbatim.
//
// The message is taken from the structured error body when present, otherwise
// the raw body text is used. The response body is fully consumed and closed.
func ParseResponseError(resp *http.Response, serviceName string) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return apperrors.Unexpected(resp.StatusCode,
			fmt.Sprintf("%s returned status %d (failed to read body: %v)", serviceName, resp.StatusCode, err))
	}

	message := extractMessage(bodyBytes)
	if message == "" {
		message = fmt.Sprintf("%s returned status %d", serviceName, resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperrors.NotFound(message)
	case http.StatusUnprocessableEntity:
		return apperrors.InvalidInput(message)
	default:
		return apperrors.Unexpected(resp.StatusCode, message)
	}
}

// extractMessage pulls the message field out of a structured error body,
// falling back to the raw body text.
func extractMessage(body []byte) string {
	var downstream DownstreamErrorInfo
	if json.Unmarshal(body, &downstream) == nil && downstream.Message != "" {
		return downstream.Message
	}
	return string(body)
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
