// Package server implements the sugarcube conversion HTTP API.
//
// # Endpoints
//
//	GET /v1/convert?amount=250&from=g&to=cup&ingredient=flour
//	GET /v1/units[?dimension=mass]
//	GET /v1/ingredients
//	GET /health
//	GET /ready
//	GET /metrics
//
// API endpoints are wrapped in a middleware chain providing Prometheus
// metrics, request IDs, panic recovery, rate limiting, and request logging.
// Errors are returned as a JSON envelope with a stable code, message, and
// request ID.
//
// The server is configured through Config (see DefaultConfig for the
// environment variable overrides) and shuts down gracefully on SIGINT and
// SIGTERM.
package server
