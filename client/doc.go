// Package client implements the CIRIS v1 API client: resource method groups
// over a shared HTTP core with credential injection, adaptive rate limiting
// and envelope decoding.
package client
