// Package api provides the HTTP API entry point for the sugarcube
// conversion service.
//
// This package acts as a thin wrapper around the reusable pkg/server
// package: it configures structured logging with the application name and
// build version, then delegates server lifecycle management to pkg/server.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/vizigr0u/sugarcube/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/convert     - Convert an amount between units, optionally through an ingredient
//   - GET /v1/units       - List registered units, optionally filtered by dimension
//   - GET /v1/ingredients - List known ingredients with their densities
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/convert)
//
//   - amount: Numeric amount to convert (required)
//   - from: Source unit name or symbol, e.g. "g", "cup" (required)
//   - to: Target unit name or symbol (required)
//   - ingredient: Ingredient name for cross-dimension conversions, e.g. "flour"
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/vizigr0u/sugarcube/pkg/api.version=1.0.0'"
package api
