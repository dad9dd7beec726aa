package store

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestToken_ExpiredAt(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		description string
		expiresAt   *time.Time
		expect      bool
	}{
		{
			description: "no expiry never expires",
			expect:      false,
		},
		{
			description: "future expiry",
			expiresAt:   timePtr(now.Add(time.Minute)),
			expect:      false,
		},
		{
			description: "expiry at now counts as expired",
			expiresAt:   timePtr(now),
			expect:      true,
		},
		{
			description: "past expiry",
			expiresAt:   timePtr(now.Add(-time.Minute)),
			expect:      true,
		},
	}
	for _, testCase := range testCases {
		token := &Token{Value: "tok", ExpiresAt: testCase.expiresAt}
		assert.Equal(t, testCase.expect, token.ExpiredAt(now), testCase.description)
	}
}

func TestNewToken_DerivesExpiryFromJWT(t *testing.T) {
	expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "observer",
		"exp": expiry.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	token := NewToken(raw)
	require.NotNil(t, token.ExpiresAt)
	assert.True(t, token.ExpiresAt.Equal(expiry))
	assert.Equal(t, "Bearer", token.TokenType)
}

func TestNewToken_OpaqueValue(t *testing.T) {
	token := NewToken("not-a-jwt")
	assert.Nil(t, token.ExpiresAt)
	assert.Equal(t, "not-a-jwt", token.Value)
}

func TestToken_Builders(t *testing.T) {
	token := NewToken("tok").WithExpiresIn(3600).WithRefreshToken("refresh")
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *token.ExpiresAt, 5*time.Second)
	assert.Equal(t, "refresh", token.RefreshToken)

	// non-positive lifetimes leave expiry unset
	assert.Nil(t, NewToken("tok").WithExpiresIn(0).ExpiresAt)
}

func TestToken_OAuth2RoundTrip(t *testing.T) {
	expiry := time.Now().Add(time.Hour).UTC()
	token := &Token{
		Value:        "access",
		ExpiresAt:    &expiry,
		RefreshToken: "refresh",
		TokenType:    "Bearer",
	}

	converted := token.OAuth2()
	assert.Equal(t, "access", converted.AccessToken)
	assert.Equal(t, "refresh", converted.RefreshToken)
	assert.True(t, converted.Expiry.Equal(expiry))

	back := FromOAuth2(converted)
	assert.Equal(t, token.Value, back.Value)
	assert.Equal(t, token.RefreshToken, back.RefreshToken)
	require.NotNil(t, back.ExpiresAt)
	assert.True(t, back.ExpiresAt.Equal(expiry))
}

func TestFromOAuth2_ZeroExpiry(t *testing.T) {
	back := FromOAuth2(&oauth2.Token{AccessToken: "access"})
	assert.Nil(t, back.ExpiresAt)
}

func TestToken_TypeDefaultsToBearer(t *testing.T) {
	assert.Equal(t, "Bearer", (&Token{Value: "tok"}).Type())
	assert.Equal(t, "mac", (&Token{Value: "tok", TokenType: "mac"}).Type())
}

func timePtr(t time.Time) *time.Time {
	return &t
}
