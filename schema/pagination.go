package schema

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

type (
	// Cursor carries opaque pagination state between list calls. It is
	// encoded as URL-safe base64 JSON, matching the server's cursors.
	Cursor struct {
		Offset    int            `json:"offset,omitempty"`
		Filters   map[string]any `json:"filters,omitempty"`
		SortKey   string         `json:"sort_key,omitempty"`
		SortValue any            `json:"sort_value,omitempty"`
	}

	// Page is a generic cursor-paged result.
	Page[T any] struct {
		Items   []T    `json:"items"`
		Total   *int   `json:"total,omitempty"`
		Cursor  string `json:"cursor,omitempty"`
		HasMore bool   `json:"has_more"`
	}
)

// EncodeCursor renders c in the server's wire form.
func EncodeCursor(c *Cursor) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeCursor parses a wire cursor.
func DecodeCursor(value string) (*Cursor, error) {
	data, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor: %w", err)
	}
	cursor := &Cursor{}
	if err := json.Unmarshal(data, cursor); err != nil {
		return nil, fmt.Errorf("invalid cursor: %w", err)
	}
	return cursor, nil
}
