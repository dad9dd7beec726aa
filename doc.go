// Package ciris is the entry point for the CIRIS agent API client: it wires
// the credential store, auth transport and rate limiting behind a single
// options struct. For fine-grained control use the client subpackage
// directly.
package ciris
