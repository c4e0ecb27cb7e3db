// Package http provides HTTP handlers and routing for the ServiceTree REST API.
//
// This package implements all HTTP endpoints using the Gin framework, including
// health checks, action search, faceting, suggestions and action execution.
//
// Endpoints:
//   - Health: / and /health
//   - Search: /search, /facets
//   - Suggestions: /suggestions
//   - Catalog: /actions, /actions/:id, /categories
//   - Execution: /actions/:id/execute, /recent, /intent
//
// Features:
//   - JSON request/response handling
//   - Query parameter validation
//   - Resolved display labels on every response
//   - Proper HTTP status codes
//
// Example Usage:
//
//	handlers := http.NewHandlers(cat, resolver, searchEngine, suggestEngine, tracker, exec, hub, metrics, "en")
//	router.GET("/search", handlers.Search)
//	router.POST("/actions/:id/execute", handlers.ExecuteAction)
package http
