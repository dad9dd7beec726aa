package client

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"

	"github.com/cirisai/ciris-go/schema"
)

// ConfigService covers the /v1/config endpoints.
type ConfigService struct {
	client *Client
}

// List returns all configuration entries; sensitive values arrive redacted
// unless the caller's role can see them.
func (s *ConfigService) List(ctx context.Context) (*schema.ConfigList, error) {
	return send[schema.ConfigList](ctx, s.client, http.MethodGet, "/v1/config", nil, nil)
}

// Get returns one configuration entry.
func (s *ConfigService) Get(ctx context.Context, key string) (*schema.ConfigValue, error) {
	return send[schema.ConfigValue](ctx, s.client, http.MethodGet,
		fmt.Sprintf("/v1/config/%s", neturl.PathEscape(key)), nil, nil)
}

// Set creates or updates a key.
func (s *ConfigService) Set(ctx context.Context, key string, request *schema.ConfigSetRequest) (*schema.ConfigOperationResponse, error) {
	return send[schema.ConfigOperationResponse](ctx, s.client, http.MethodPut,
		fmt.Sprintf("/v1/config/%s", neturl.PathEscape(key)), nil, request)
}

// Delete removes a key.
func (s *ConfigService) Delete(ctx context.Context, key string) (*schema.ConfigOperationResponse, error) {
	return send[schema.ConfigOperationResponse](ctx, s.client, http.MethodDelete,
		fmt.Sprintf("/v1/config/%s", neturl.PathEscape(key)), nil, nil)
}
