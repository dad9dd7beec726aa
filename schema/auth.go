package schema

import "time"

// Roles of the v1 four-role model, in increasing order of privilege.
const (
	RoleObserver  = "OBSERVER"
	RoleAdmin     = "ADMIN"
	RoleAuthority = "AUTHORITY"
	RoleRoot      = "ROOT"
)

type (
	// LoginRequest authenticates with username/password.
	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	// LoginResponse carries the issued access token.
	LoginResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
		UserID      string `json:"user_id"`
		Role        string `json:"role"`
	}

	// TokenRefreshRequest exchanges a refresh token for a new access token.
	TokenRefreshRequest struct {
		RefreshToken string `json:"refresh_token"`
	}

	// UserInfo describes the authenticated user.
	UserInfo struct {
		UserID      string     `json:"user_id"`
		Username    string     `json:"username"`
		Role        string     `json:"role"`
		Permissions []string   `json:"permissions"`
		CreatedAt   time.Time  `json:"created_at"`
		LastLogin   *time.Time `json:"last_login,omitempty"`
	}
)
