package client

import (
	"context"
	"net/http"

	"github.com/cirisai/ciris-go/client/auth/store"
	"github.com/cirisai/ciris-go/schema"
)

// AuthService covers the /v1/auth endpoints. Successful login and refresh
// persist the issued token to the credential store under the client's base
// URL, so later requests (and later processes sharing a file store)
// authenticate without logging in again.
type AuthService struct {
	client *Client
}

// Login authenticates with username/password and stores the issued token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*schema.LoginResponse, error) {
	resp, err := send[schema.LoginResponse](ctx, s.client, http.MethodPost, "/v1/auth/login", nil,
		&schema.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	token := store.NewToken(resp.AccessToken).WithExpiresIn(resp.ExpiresIn)
	if resp.TokenType != "" {
		token.TokenType = resp.TokenType
	}
	if err := s.client.store.StoreToken(s.client.baseURL, token); err != nil {
		return nil, err
	}
	return resp, nil
}

// Logout invalidates the session server-side and clears stored credentials
// for this base URL.
func (s *AuthService) Logout(ctx context.Context) error {
	if _, err := send[struct{}](ctx, s.client, http.MethodPost, "/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	return s.client.store.Clear(s.client.baseURL)
}

// Me returns the authenticated user.
func (s *AuthService) Me(ctx context.Context) (*schema.UserInfo, error) {
	return send[schema.UserInfo](ctx, s.client, http.MethodGet, "/v1/auth/me", nil, nil)
}

// Refresh exchanges a refresh token for a new access token and stores it.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*schema.LoginResponse, error) {
	resp, err := send[schema.LoginResponse](ctx, s.client, http.MethodPost, "/v1/auth/refresh", nil,
		&schema.TokenRefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	token := store.NewToken(resp.AccessToken).WithExpiresIn(resp.ExpiresIn).
		WithRefreshToken(refreshToken)
	if resp.TokenType != "" {
		token.TokenType = resp.TokenType
	}
	if err := s.client.store.StoreToken(s.client.baseURL, token); err != nil {
		return nil, err
	}
	return resp, nil
}

// StoreAPIKey saves an API key for this base URL, replacing any previous one.
func (s *AuthService) StoreAPIKey(apiKey string) error {
	return s.client.store.StoreAPIKey(s.client.baseURL, apiKey)
}
