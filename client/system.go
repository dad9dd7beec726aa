package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cirisai/ciris-go/schema"
)

// SystemService covers the /v1/system endpoints: health, time, resources and
// runtime control.
type SystemService struct {
	client *Client
}

func (s *SystemService) Health(ctx context.Context) (*schema.SystemHealth, error) {
	return send[schema.SystemHealth](ctx, s.client, http.MethodGet, "/v1/system/health", nil, nil)
}

func (s *SystemService) Time(ctx context.Context) (*schema.SystemTime, error) {
	return send[schema.SystemTime](ctx, s.client, http.MethodGet, "/v1/system/time", nil, nil)
}

func (s *SystemService) Resources(ctx context.Context) (*schema.ResourceUsage, error) {
	return send[schema.ResourceUsage](ctx, s.client, http.MethodGet, "/v1/system/resources", nil, nil)
}

// Runtime executes a runtime-control action (see schema.RuntimeAction*).
func (s *SystemService) Runtime(ctx context.Context, action string, request *schema.RuntimeControlRequest) (*schema.RuntimeControlResponse, error) {
	if request == nil {
		request = &schema.RuntimeControlRequest{}
	}
	return send[schema.RuntimeControlResponse](ctx, s.client, http.MethodPost,
		fmt.Sprintf("/v1/system/runtime/%s", action), nil, request)
}

// Pause suspends the processor.
func (s *SystemService) Pause(ctx context.Context, reason string) (*schema.RuntimeControlResponse, error) {
	return s.Runtime(ctx, schema.RuntimeActionPause, &schema.RuntimeControlRequest{Reason: reason})
}

// Resume continues a paused processor.
func (s *SystemService) Resume(ctx context.Context, reason string) (*schema.RuntimeControlResponse, error) {
	return s.Runtime(ctx, schema.RuntimeActionResume, &schema.RuntimeControlRequest{Reason: reason})
}

func (s *SystemService) Services(ctx context.Context) (*schema.ServicesStatus, error) {
	return send[schema.ServicesStatus](ctx, s.client, http.MethodGet, "/v1/system/services", nil, nil)
}

// Shutdown requests a graceful stop through the authenticated endpoint. For
// the signed out-of-band path see EmergencyService.Shutdown.
func (s *SystemService) Shutdown(ctx context.Context, request *schema.ShutdownRequest) (*schema.ShutdownResponse, error) {
	return send[schema.ShutdownResponse](ctx, s.client, http.MethodPost, "/v1/system/shutdown", nil, request)
}
