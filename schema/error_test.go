package schema

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIError_FromEnvelope(t *testing.T) {
	envelope := &ErrorEnvelope{Error: &ErrorDetail{
		Code:    "INSUFFICIENT_PERMISSIONS",
		Message: "requires ADMIN role",
		Details: map[string]any{"required_role": "ADMIN"},
	}}
	err := NewAPIError(http.StatusForbidden, envelope, "Forbidden")
	assert.Equal(t, "INSUFFICIENT_PERMISSIONS", err.Code)
	assert.Equal(t, "requires ADMIN role", err.Message)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "INSUFFICIENT_PERMISSIONS")
}

func TestNewAPIError_FallbackMessage(t *testing.T) {
	err := NewAPIError(http.StatusBadGateway, &ErrorEnvelope{}, "Bad Gateway")
	assert.Equal(t, "Bad Gateway", err.Message)
	assert.Empty(t, err.Code)
}

func TestAsAPIError_Wrapped(t *testing.T) {
	inner := NewAPIError(http.StatusUnauthorized, nil, "Unauthorized")
	wrapped := fmt.Errorf("calling agent: %w", inner)

	apiErr, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.True(t, IsUnauthorized(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.False(t, IsRateLimited(wrapped))
}
