package schema

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorEnvelope is the wire form of a v1 API error:
//
//	{"error": {"code": "RESOURCE_NOT_FOUND", "message": "...", "details": {...}}}
type ErrorEnvelope struct {
	Error *ErrorDetail `json:"error,omitempty"`
	// Detail carries plain validation errors emitted outside the envelope.
	Detail any `json:"detail,omitempty"`
}

// ErrorDetail is the structured error body inside the envelope.
type ErrorDetail struct {
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// APIError is returned for any response with a 4xx/5xx status.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]any
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// NewAPIError builds an APIError from a status code and decoded envelope.
func NewAPIError(statusCode int, envelope *ErrorEnvelope, fallback string) *APIError {
	ret := &APIError{StatusCode: statusCode, Message: fallback}
	if envelope != nil && envelope.Error != nil {
		if envelope.Error.Message != "" {
			ret.Message = envelope.Error.Message
		}
		ret.Code = envelope.Error.Code
		ret.Details = envelope.Error.Details
	}
	return ret
}

// AsAPIError unwraps err into an *APIError if one is present in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a 401 API error.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 API error.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsRateLimited reports whether err is a 429 API error.
func IsRateLimited(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusTooManyRequests
}
