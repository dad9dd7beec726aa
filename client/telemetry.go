package client

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"
	"strconv"

	"github.com/cirisai/ciris-go/internal/conv"
	"github.com/cirisai/ciris-go/schema"
)

// TelemetryService covers the /v1/telemetry endpoints: metrics, traces, logs
// and resource history.
type TelemetryService struct {
	client *Client
}

func (s *TelemetryService) Overview(ctx context.Context) (*schema.TelemetryOverview, error) {
	return send[schema.TelemetryOverview](ctx, s.client, http.MethodGet, "/v1/telemetry/overview", nil, nil)
}

func (s *TelemetryService) Metrics(ctx context.Context) (*schema.MetricList, error) {
	return send[schema.MetricList](ctx, s.client, http.MethodGet, "/v1/telemetry/metrics", nil, nil)
}

// Metric returns one metric with aggregates and recent data points.
func (s *TelemetryService) Metric(ctx context.Context, name string) (*schema.MetricDetail, error) {
	return send[schema.MetricDetail](ctx, s.client, http.MethodGet,
		fmt.Sprintf("/v1/telemetry/metrics/%s", neturl.PathEscape(name)), nil, nil)
}

// Traces lists reasoning traces, most recent first.
func (s *TelemetryService) Traces(ctx context.Context, query *schema.TraceQuery) (*schema.TraceList, error) {
	values := neturl.Values{}
	if query != nil {
		if query.Limit > 0 {
			values.Set("limit", strconv.Itoa(query.Limit))
		}
		if query.StartTime != nil {
			values.Set("start_time", conv.FormatTime(*query.StartTime))
		}
	}
	return send[schema.TraceList](ctx, s.client, http.MethodGet, "/v1/telemetry/traces", values, nil)
}

// Logs lists system log entries matching the filter.
func (s *TelemetryService) Logs(ctx context.Context, query *schema.LogQuery) (*schema.LogList, error) {
	values := neturl.Values{}
	if query != nil {
		if query.Level != "" {
			values.Set("level", query.Level)
		}
		if query.Service != "" {
			values.Set("service", query.Service)
		}
		if query.Limit > 0 {
			values.Set("limit", strconv.Itoa(query.Limit))
		}
		if query.Since != nil {
			values.Set("since", conv.FormatTime(*query.Since))
		}
	}
	return send[schema.LogList](ctx, s.client, http.MethodGet, "/v1/telemetry/logs", values, nil)
}

// Query runs a generic telemetry query; the result shape depends on the
// query type, so it stays loosely typed.
func (s *TelemetryService) Query(ctx context.Context, query *schema.TelemetryQuery) (map[string]any, error) {
	ret, err := send[map[string]any](ctx, s.client, http.MethodPost, "/v1/telemetry/query", nil, query)
	if err != nil {
		return nil, err
	}
	return *ret, nil
}

func (s *TelemetryService) Resources(ctx context.Context) (*schema.ResourceUsage, error) {
	return send[schema.ResourceUsage](ctx, s.client, http.MethodGet, "/v1/telemetry/resources", nil, nil)
}

// ResourceHistory returns usage snapshots for the trailing window.
func (s *TelemetryService) ResourceHistory(ctx context.Context, hours int) ([]schema.ResourceSnapshot, error) {
	values := neturl.Values{}
	if hours > 0 {
		values.Set("hours", strconv.Itoa(hours))
	}
	ret, err := send[[]schema.ResourceSnapshot](ctx, s.client, http.MethodGet, "/v1/telemetry/resources/history", values, nil)
	if err != nil {
		return nil, err
	}
	return *ret, nil
}
