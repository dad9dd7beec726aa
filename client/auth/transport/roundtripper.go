package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/viant/afs/url"
	"go.uber.org/zap"

	"github.com/cirisai/ciris-go/client/auth/store"
	"github.com/cirisai/ciris-go/schema"
)

const refreshPath = "/v1/auth/refresh"

// RoundTripper attaches stored credentials to outgoing requests, keyed by the
// base URL of each request. On a 401 it renews the access token through the
// refresh endpoint when a refresh token is on file, persists the renewed
// token, and replays the request once.
type RoundTripper struct {
	store     store.Store
	transport http.RoundTripper
	logger    *zap.Logger
	// baseURL, when set, pins the store key; otherwise it is derived from
	// each request URL. Clients behind path-prefixed proxies need the pin.
	baseURL string
	mux     sync.Mutex
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     store.NewMemoryStore(),
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret, nil
}

func (r *RoundTripper) Store() store.Store {
	return r.store
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	baseURL := r.baseURL
	if baseURL == "" {
		baseURL, _ = url.Base(req.URL.String(), "http")
	}

	attempt := clone(req)
	attempt.Header.Set(schema.HeaderAPIVersion, schema.APIVersion)
	credential, err := r.credential(req.Context(), baseURL)
	if err != nil {
		return nil, err
	}
	if credential != "" {
		attempt.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := r.transport.RoundTrip(attempt)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// 401: renew through the refresh endpoint when a refresh token exists.
	stored, _, lookupErr := r.store.LookupToken(baseURL)
	if lookupErr != nil {
		resp.Body.Close()
		return nil, lookupErr
	}
	if stored == nil || stored.RefreshToken == "" {
		return resp, nil
	}
	resp.Body.Close()

	renewed, err := r.refresh(req.Context(), baseURL, stored)
	if err != nil {
		return nil, err
	}

	retry := clone(req)
	retry.Header.Set(schema.HeaderAPIVersion, schema.APIVersion)
	retry.Header.Set("Authorization", "Bearer "+renewed.Value)
	return r.transport.RoundTrip(retry)
}

// credential resolves the value for the Authorization header: an explicit
// per-request token wins, then a stored non-expired token, then an API key.
// An expired token with a refresh token on file is renewed eagerly rather
// than burning a request on a guaranteed 401.
func (r *RoundTripper) credential(ctx context.Context, baseURL string) (string, error) {
	if explicit := getAuthToken(ctx); explicit != "" {
		return explicit, nil
	}
	token, state, err := r.store.LookupToken(baseURL)
	if err != nil {
		return "", err
	}
	switch state {
	case store.TokenValid:
		return token.Value, nil
	case store.TokenExpired:
		if token.RefreshToken != "" {
			renewed, err := r.refresh(ctx, baseURL, token)
			if err != nil {
				r.logger.Warn("token refresh failed, falling back to api key",
					zap.String("baseURL", baseURL), zap.Error(err))
				break
			}
			return renewed.Value, nil
		}
	}
	return r.store.APIKey(baseURL)
}

// refresh exchanges the refresh token for a new access token and persists it.
// The mutex collapses concurrent 401s into a single refresh round trip.
func (r *RoundTripper) refresh(ctx context.Context, baseURL string, expired *store.Token) (*store.Token, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	// another caller may have refreshed while we waited on the lock
	if current, state, err := r.store.LookupToken(baseURL); err == nil &&
		state == store.TokenValid && current.Value != expired.Value {
		return current, nil
	}

	body, err := json.Marshal(&schema.TokenRefreshRequest{RefreshToken: expired.RefreshToken})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		url.Join(baseURL, refreshPath), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(schema.HeaderAPIVersion, schema.APIVersion)

	resp, err := r.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("refresh rejected with status %d", resp.StatusCode)
	}

	login, err := decodeLogin(data)
	if err != nil {
		return nil, err
	}
	renewed := store.NewToken(login.AccessToken).WithExpiresIn(login.ExpiresIn)
	renewed.TokenType = login.TokenType
	// the refresh endpoint does not rotate the refresh token; keep the old one
	renewed.RefreshToken = expired.RefreshToken
	if err := r.store.StoreToken(baseURL, renewed); err != nil {
		return nil, err
	}
	return renewed, nil
}

// decodeLogin accepts both the enveloped and the bare response form.
func decodeLogin(data []byte) (*schema.LoginResponse, error) {
	envelope := &schema.SuccessResponse{}
	ret := &schema.LoginResponse{}
	if err := json.Unmarshal(data, envelope); err == nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, ret); err != nil {
			return nil, err
		}
		return ret, nil
	}
	if err := json.Unmarshal(data, ret); err != nil {
		return nil, err
	}
	return ret, nil
}
