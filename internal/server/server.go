package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/careshift/servicetree/internal/catalog"
	"github.com/careshift/servicetree/internal/config"
	"github.com/careshift/servicetree/internal/executor"
	handlers "github.com/careshift/servicetree/internal/http"
	"github.com/careshift/servicetree/internal/i18n"
	"github.com/careshift/servicetree/internal/middleware"
	"github.com/careshift/servicetree/internal/monitoring"
	"github.com/careshift/servicetree/internal/recency"
	"github.com/careshift/servicetree/internal/search"
	"github.com/careshift/servicetree/internal/storage"
	"github.com/careshift/servicetree/internal/suggest"
	"github.com/careshift/servicetree/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	catalog *catalog.Catalog
	hub     *ws.Hub
	log     *zap.Logger
	http    *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	// Load catalog: built-in actions plus any bundle files on disk.
	seeder := catalog.NewSeeder(cfg.Catalog.BundleDir, log)
	cat, bundle, err := seeder.Load()
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded",
		zap.Int("actions", cat.Len()),
		zap.Int("categories", len(cat.Categories())),
	)

	resolver := i18n.NewResolver(bundle, cfg.I18n.FallbackLanguage)

	store, err := storage.NewFile(cfg.Recency.Dir)
	if err != nil {
		return nil, err
	}
	tracker := recency.NewTracker(store, cfg.Recency.Key, cfg.Recency.Capacity, log)

	hub := ws.NewHub(log)
	exec := executor.New(
		tracker,
		hub,
		hub,
		time.Duration(cfg.Executor.SignalDelayMS)*time.Millisecond,
		log,
	)

	searchEngine := search.NewEngine(cat, resolver, log)
	suggestEngine := suggest.NewEngine(cat, cfg.Suggest.Limit, log)

	metrics, registry := monitoring.NewMetrics()
	metrics.CatalogActions.Set(float64(cat.Len()))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.Middleware(metrics))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	h := handlers.NewHandlers(
		cat,
		resolver,
		searchEngine,
		search.Options{Limit: cfg.Search.Limit, MinScore: cfg.Search.MinScore},
		suggestEngine,
		tracker,
		exec,
		hub,
		metrics,
		cfg.I18n.DefaultLanguage,
	)

	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	// Search
	router.GET("/search", h.Search)
	router.GET("/facets", h.Facets)
	router.GET("/suggestions", h.Suggestions)

	// Catalog
	router.GET("/actions", h.ListActions)
	router.GET("/actions/:id", h.GetAction)
	router.GET("/categories", h.ListCategories)

	// Execution
	router.POST("/actions/:id/execute", h.ExecuteAction)
	router.GET("/recent", h.Recent)
	router.GET("/intent", h.ConsumeIntent)

	// Observability
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// WebSocket
	router.GET("/stream", hub.HandleConnection)

	return &Server{
		router:  router,
		catalog: cat,
		hub:     hub,
		log:     log,
		http: &http.Server{
			Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
			Handler: router,
		},
	}, nil
}

// Run starts the server and blocks until it stops
func (s *Server) Run() error {
	s.log.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	return s.http.Shutdown(ctx)
}
