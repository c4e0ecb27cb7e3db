// Package server provides HTTP server setup and initialization for the
// ServiceTree backend.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (CORS, rate limiting, request IDs, metrics, recovery)
//   - Catalog seeding from built-in defaults plus bundle files
//   - Engine construction (search, suggestions, executor, recency)
//   - WebSocket event hub
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Seed catalog and translation bundle
//  4. Build engines and the executor with its event hub
//  5. Setup HTTP routes and middleware
//  6. Start HTTP server
//  7. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
