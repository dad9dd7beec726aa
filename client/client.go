package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/afs/url"
	"go.uber.org/zap"

	"github.com/cirisai/ciris-go/client/auth/store"
	"github.com/cirisai/ciris-go/client/auth/transport"
	"github.com/cirisai/ciris-go/client/ratelimit"
	"github.com/cirisai/ciris-go/schema"
)

// HeaderCorrelationID carries a client-generated ID for request correlation
// in server logs.
const HeaderCorrelationID = "X-Correlation-ID"

const defaultRequestsPerMinute = 600

// Client talks to one agent's v1 API. Resource method groups hang off the
// exported service fields.
type Client struct {
	baseURL    string
	host       string
	httpClient *http.Client
	logger     *zap.Logger
	limiters   *ratelimit.Registry
	store      store.Store
	authRT     *transport.RoundTripper

	Agent         *AgentService
	System        *SystemService
	Memory        *MemoryService
	Config        *ConfigService
	Auth          *AuthService
	WiseAuthority *WiseAuthorityService
	Telemetry     *TelemetryService
	Audit         *AuditService
	Emergency     *EmergencyService
	Jobs          *JobsService
}

// New creates a client for the agent at baseURL.
func New(baseURL string, options ...Option) (*Client, error) {
	parsed, err := neturl.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	ret := &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		host:     parsed.Host,
		logger:   zap.NewNop(),
		limiters: ratelimit.NewRegistry(defaultRequestsPerMinute),
		store:    store.NewMemoryStore(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.httpClient == nil {
		authRT, err := transport.New(
			transport.WithStore(ret.store),
			transport.WithLogger(ret.logger),
			transport.WithBaseURL(ret.baseURL))
		if err != nil {
			return nil, err
		}
		ret.authRT = authRT
		ret.httpClient = &http.Client{Transport: authRT}
	}

	ret.Agent = &AgentService{client: ret}
	ret.System = &SystemService{client: ret}
	ret.Memory = &MemoryService{client: ret}
	ret.Config = &ConfigService{client: ret}
	ret.Auth = &AuthService{client: ret}
	ret.WiseAuthority = &WiseAuthorityService{client: ret}
	ret.Telemetry = &TelemetryService{client: ret}
	ret.Audit = &AuditService{client: ret}
	ret.Emergency = &EmergencyService{client: ret}
	ret.Jobs = &JobsService{client: ret}
	return ret, nil
}

// BaseURL returns the agent base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Store exposes the credential store so callers can inspect or seed
// credentials directly.
func (c *Client) Store() store.Store {
	return c.store
}

func send[R any](ctx context.Context, c *Client, method, path string, query neturl.Values, body any) (*R, error) {
	limiter := c.limiters.Limiter(c.host)
	if err := limiter.Acquire(ctx); err != nil {
		return nil, err
	}

	endpoint := url.Join(c.baseURL, path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(HeaderCorrelationID, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	limiter.Observe(resp)
	c.observe(req, resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		envelope := &schema.ErrorEnvelope{}
		json.Unmarshal(data, envelope)
		return nil, schema.NewAPIError(resp.StatusCode, envelope, http.StatusText(resp.StatusCode))
	}

	ret := new(R)
	if len(data) == 0 || resp.StatusCode == http.StatusNoContent {
		return ret, nil
	}
	envelope := &schema.SuccessResponse{}
	if err := json.Unmarshal(data, envelope); err == nil && len(envelope.Data) > 0 {
		data = envelope.Data
	}
	if err := json.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return ret, nil
}

// observe surfaces advisory response headers through the logger.
func (c *Client) observe(req *http.Request, resp *http.Response) {
	if deprecated := resp.Header.Get(schema.HeaderAPIDeprecated); deprecated != "" {
		c.logger.Warn("endpoint is deprecated",
			zap.String("path", req.URL.Path),
			zap.String("deprecation", deprecated))
	}
	if remaining := resp.Header.Get(schema.HeaderRateLimitRemaining); remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil && n < 10 {
			c.logger.Warn("rate limit nearly exhausted",
				zap.String("path", req.URL.Path),
				zap.Int("remaining", n))
		}
	}
	c.logger.Debug("request completed",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode))
}
