// Package config provides 12-factor configuration management for the
// ServiceTree backend.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - Catalog: Bundle directory for catalog extensions
//   - I18n: Default and fallback languages
//   - Search, Suggest: Engine result limits and score threshold
//   - Recency: Persistence directory, key and capacity
//   - Executor: Post-navigation signal delay
//   - RateLimit: Per-IP rate limiting configuration
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - CATALOG_BUNDLE_DIR
//   - DEFAULT_LANG, FALLBACK_LANG
//   - SEARCH_LIMIT, SEARCH_MIN_SCORE, SUGGEST_LIMIT
//   - RECENCY_DIR, RECENCY_KEY, RECENCY_CAPACITY
//   - SIGNAL_DELAY_MS
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
