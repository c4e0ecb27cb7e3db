// Package main is the entry point for the ServiceTree backend server.
//
// The server exposes the action catalog of the CareShift platform as a
// searchable, localized REST API with contextual suggestions and action
// execution.
//
// The server provides:
//   - Weighted full-text search over the action catalog
//   - Category facets and contextual suggestions
//   - Action execution with recency tracking
//   - WebSocket streaming of navigation and view signals
//   - Prometheus metrics and rate limiting
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8080
//
//	# Development mode (colored logs, debug level)
//	./server -dev -bundles ./bundles
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
