// Package server runs the HTTP transport: it wraps the router with CORS and
// request timeouts, starts listening, and shuts down gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
