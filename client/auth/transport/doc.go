// Package transport provides an http.RoundTripper that injects stored
// credentials per base URL and transparently renews expired access tokens.
package transport
