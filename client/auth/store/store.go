// Package store persists per-server credentials (API keys and bearer
// tokens) for the CIRIS client. The durable implementation keeps a single
// JSON document on disk, keyed by server base URL; a memory implementation
// backs tests and throwaway clients.
package store

import "time"

// TokenState is the tagged outcome of a token lookup, so callers can tell
// "never authenticated" apart from "needs refresh".
type TokenState int

const (
	// TokenAbsent means no token was ever stored for the base URL.
	TokenAbsent TokenState = iota
	// TokenExpired means a token exists but its expiry has passed; the
	// record is still returned so callers can reach its refresh token.
	TokenExpired
	// TokenValid means the token can be used as-is.
	TokenValid
)

func (s TokenState) String() string {
	switch s {
	case TokenExpired:
		return "expired"
	case TokenValid:
		return "valid"
	}
	return "absent"
}

// Entry summarizes what is stored for one base URL.
type Entry struct {
	HasAPIKey bool
	HasToken  bool
	// TokenExpired is nil when no token is stored.
	TokenExpired *bool
}

// Store is the persistence layer for per-server credentials. Implementations
// are value objects owned by whichever component needs credential lookup
// (typically the auth transport); there is no package-level default instance.
type Store interface {
	// StoreAPIKey upserts the API key for a base URL, stamping its creation time.
	StoreAPIKey(baseURL, apiKey string) error
	// APIKey returns the stored API key for a base URL, or "" when absent.
	// API keys carry no expiry, so no liveness check applies.
	APIKey(baseURL string) (string, error)
	// StoreToken upserts the token for a base URL, stamping StoredAt.
	StoreToken(baseURL string, token *Token) error
	// LookupToken returns the stored token together with its state. The
	// record accompanies both TokenValid and TokenExpired; only
	// TokenAbsent yields a nil token.
	LookupToken(baseURL string) (*Token, TokenState, error)
	// Clear removes both credential kinds for one base URL; absent URLs are a no-op.
	Clear(baseURL string) error
	// ClearAll removes every stored credential for every base URL.
	ClearAll() error
	// List reports, for each base URL with any stored credential, which
	// kinds exist and whether the token (if any) is currently expired.
	List() (map[string]Entry, error)
}

// normalizeBaseURL canonicalizes a store key: base URLs with and without a
// trailing slash address the same entry.
func normalizeBaseURL(baseURL string) string {
	for len(baseURL) > 1 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return baseURL
}

// nowFunc returns wall-clock time; replaced in tests.
type nowFunc func() time.Time
