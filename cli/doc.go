// Package cli implements the ciris command line tool: login/logout, agent
// interaction and credential management over the client library.
package cli
