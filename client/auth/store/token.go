package store

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// DefaultTokenType is assumed when a token record carries no explicit type.
const DefaultTokenType = "Bearer"

// Token is a stored bearer credential with expiry metadata.
type Token struct {
	// Value is the opaque credential string sent in the Authorization header.
	Value string
	// ExpiresAt is the expiry instant; nil means the token never expires.
	ExpiresAt *time.Time
	// RefreshToken, when present, lets the transport renew an expired token.
	RefreshToken string
	TokenType    string
	Scope        string
	// StoredAt is stamped by the store on every StoreToken call.
	StoredAt time.Time
}

// NewToken builds a token record for value. When the value is a JWT and no
// explicit expiry is later set, the expiry is derived from its exp claim
// (unverified: the claim only schedules local refresh, it grants nothing).
func NewToken(value string) *Token {
	token := &Token{Value: value, TokenType: DefaultTokenType}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(value, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			expiry := exp.Time
			token.ExpiresAt = &expiry
		}
	}
	return token
}

// WithExpiry returns t with ExpiresAt set to the given instant.
func (t *Token) WithExpiry(expiresAt time.Time) *Token {
	t.ExpiresAt = &expiresAt
	return t
}

// WithExpiresIn returns t expiring in the given number of seconds from now.
func (t *Token) WithExpiresIn(seconds int64) *Token {
	if seconds > 0 {
		expiry := time.Now().Add(time.Duration(seconds) * time.Second)
		t.ExpiresAt = &expiry
	}
	return t
}

// WithRefreshToken returns t carrying a refresh token.
func (t *Token) WithRefreshToken(refreshToken string) *Token {
	t.RefreshToken = refreshToken
	return t
}

// Expired reports whether the token's expiry has passed. A token with no
// expiry never expires.
func (t *Token) Expired() bool {
	return t.ExpiredAt(time.Now())
}

// ExpiredAt is the pure form of Expired: true when ExpiresAt is set and is
// at or before now.
func (t *Token) ExpiredAt(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// Type returns the token type, defaulting to Bearer.
func (t *Token) Type() string {
	if t.TokenType == "" {
		return DefaultTokenType
	}
	return t.TokenType
}

// OAuth2 converts the record into an oauth2 token so the store plugs into
// oauth2-based HTTP stacks.
func (t *Token) OAuth2() *oauth2.Token {
	ret := &oauth2.Token{
		AccessToken:  t.Value,
		TokenType:    t.Type(),
		RefreshToken: t.RefreshToken,
	}
	if t.ExpiresAt != nil {
		ret.Expiry = *t.ExpiresAt
	}
	return ret
}

// FromOAuth2 converts an oauth2 token into a store record.
func FromOAuth2(token *oauth2.Token) *Token {
	ret := &Token{
		Value:        token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		ret.ExpiresAt = &expiry
	}
	return ret
}
