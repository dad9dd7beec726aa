package transport

import "context"

type contextKey string

// ContextAuthTokenKey forces a specific bearer token for requests carrying it,
// bypassing the store.
const ContextAuthTokenKey contextKey = "authToken"

// WithAuthToken returns a context that pins the bearer token for requests
// issued under it.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ContextAuthTokenKey, token)
}

func getAuthToken(ctx context.Context) string {
	if v := ctx.Value(ContextAuthTokenKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
