package schema

import (
	"encoding/json"
	"time"
)

type (
	// SuccessResponse is the standard v1 envelope. Data holds the payload
	// still encoded, so the caller decides the concrete type.
	SuccessResponse struct {
		Data     json.RawMessage   `json:"data,omitempty"`
		Metadata *ResponseMetadata `json:"metadata,omitempty"`
	}

	// ResponseMetadata describes the request that produced a response.
	ResponseMetadata struct {
		RequestID  string     `json:"request_id,omitempty"`
		Timestamp  *time.Time `json:"timestamp,omitempty"`
		DurationMS int64      `json:"duration_ms,omitempty"`
	}
)

// Response headers the client surfaces through logging.
const (
	HeaderAPIVersion         = "X-API-Version"
	HeaderAPIDeprecated      = "X-API-Deprecated"
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRateLimitWindow    = "X-RateLimit-Window"
)

// APIVersion is the protocol version this SDK speaks.
const APIVersion = "v1"
