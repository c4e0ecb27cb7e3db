package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careshift/servicetree/internal/catalog"
	"github.com/careshift/servicetree/internal/executor"
	"github.com/careshift/servicetree/internal/i18n"
	"github.com/careshift/servicetree/internal/monitoring"
	"github.com/careshift/servicetree/internal/recency"
	"github.com/careshift/servicetree/internal/search"
	"github.com/careshift/servicetree/internal/suggest"
	"github.com/careshift/servicetree/internal/ws"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	catalog        *catalog.Catalog
	resolver       *i18n.Resolver
	search         *search.Engine
	searchDefaults search.Options
	suggest        *suggest.Engine
	tracker        *recency.Tracker
	executor       *executor.Executor
	hub            *ws.Hub
	metrics        *monitoring.Metrics
	defaultLang    string
}

// NewHandlers creates a new handler set. searchDefaults supplies the
// configured limit and score threshold applied when a request leaves them
// unset.
func NewHandlers(
	cat *catalog.Catalog,
	resolver *i18n.Resolver,
	searchEngine *search.Engine,
	searchDefaults search.Options,
	suggestEngine *suggest.Engine,
	tracker *recency.Tracker,
	exec *executor.Executor,
	hub *ws.Hub,
	metrics *monitoring.Metrics,
	defaultLang string,
) *Handlers {
	return &Handlers{
		catalog:        cat,
		resolver:       resolver,
		search:         searchEngine,
		searchDefaults: searchDefaults,
		suggest:        suggestEngine,
		tracker:        tracker,
		executor:       exec,
		hub:            hub,
		metrics:        metrics,
		defaultLang:    defaultLang,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "ServiceTree",
		"version": "1.0.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"catalog":   h.catalog.Stats(),
		"languages": h.resolver.Languages(),
		"stream":    gin.H{"clients": h.hub.Clients()},
	})
}

// Search ranks catalog actions against a free-text query
func (h *Handlers) Search(c *gin.Context) {
	query := c.Query("q")
	lang := h.lang(c)

	opts := search.Options{
		Limit:     h.searchDefaults.Limit,
		MinScore:  h.searchDefaults.MinScore,
		Category:  c.Query("category"),
		Workspace: catalog.Workspace(c.Query("workspace")),
	}

	if v, err := intQuery(c, "limit"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if v > 0 {
		opts.Limit = v
	}
	if v, err := intQuery(c, "min_score"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if v > 0 {
		opts.MinScore = v
	}

	start := time.Now()
	results := h.search.Search(query, lang, opts)
	if h.metrics != nil {
		h.metrics.RecordSearch(lang, len(results), time.Since(start))
	}
	if results == nil {
		results = []search.Result{}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"lang":    lang,
		"results": results,
		"total":   len(results),
	})
}

// Facets returns category aggregates over the full catalog
func (h *Handlers) Facets(c *gin.Context) {
	lang := h.lang(c)
	c.JSON(http.StatusOK, gin.H{
		"lang":   lang,
		"facets": h.search.Facets(lang),
	})
}

// Suggestions returns contextual action suggestions for the current route
func (h *Handlers) Suggestions(c *gin.Context) {
	lang := h.lang(c)
	ctx := suggest.Context{
		Route:           c.Query("route"),
		RecentActionIDs: h.tracker.List(),
		Workspace:       catalog.Workspace(c.Query("workspace")),
	}

	actions := h.suggest.Suggest(ctx)
	if h.metrics != nil {
		h.metrics.SuggestionsTotal.Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"route":       ctx.Route,
		"lang":        lang,
		"suggestions": h.enrich(actions, lang),
		"total":       len(actions),
	})
}

// ListActions lists catalog actions, optionally filtered
func (h *Handlers) ListActions(c *gin.Context) {
	lang := h.lang(c)
	category := c.Query("category")
	workspace := catalog.Workspace(c.Query("workspace"))

	var actions []catalog.Action
	for _, a := range h.catalog.VisibleTo(workspace) {
		if category != "" && a.Category != category {
			continue
		}
		actions = append(actions, a)
	}

	c.JSON(http.StatusOK, gin.H{
		"actions": h.enrich(actions, lang),
		"total":   len(actions),
		"stats":   h.catalog.Stats(),
	})
}

// GetAction returns a single catalog action by ID
func (h *Handlers) GetAction(c *gin.Context) {
	action, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "action not found"})
		return
	}

	lang := h.lang(c)
	c.JSON(http.StatusOK, h.enriched(action, lang))
}

// ListCategories lists catalog categories with resolved labels
func (h *Handlers) ListCategories(c *gin.Context) {
	lang := h.lang(c)

	categories := make([]gin.H, 0, len(h.catalog.Categories()))
	for _, cat := range h.catalog.Categories() {
		categories = append(categories, gin.H{
			"id":    cat.ID,
			"label": h.resolver.Resolve(cat.LabelKey, lang, cat.ID),
			"icon":  cat.Icon,
			"color": cat.Color,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"lang":       lang,
		"categories": categories,
	})
}

// ExecuteAction executes a catalog action by ID
func (h *Handlers) ExecuteAction(c *gin.Context) {
	action, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "action not found"})
		return
	}

	executed := h.executor.Execute(action)
	if h.metrics != nil {
		h.metrics.RecordExecution(executed.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"action":  h.enriched(executed, h.lang(c)),
		"route":   executed.Route,
		"recent":  h.tracker.List(),
	})
}

// Recent returns the recently executed action IDs, most recent first
func (h *Handlers) Recent(c *gin.Context) {
	ids := h.tracker.List()
	lang := h.lang(c)

	actions := make([]catalog.Action, 0, len(ids))
	for _, id := range ids {
		if a, ok := h.catalog.Get(id); ok {
			actions = append(actions, a)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ids":     ids,
		"actions": h.enrich(actions, lang),
	})
}

// ConsumeIntent hands the pending post-navigation signal to the destination
// view. Consuming is one-shot; a second call returns empty.
func (h *Handlers) ConsumeIntent(c *gin.Context) {
	intent, ok := h.executor.ConsumeIntent()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"pending": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pending": true,
		"intent":  intent,
	})
}

// lang picks the request language, falling back to the configured default.
func (h *Handlers) lang(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return h.defaultLang
}

// enriched resolves display text for one action.
func (h *Handlers) enriched(a catalog.Action, lang string) gin.H {
	out := gin.H{
		"action":      a,
		"label":       h.resolver.Resolve(a.LabelKey, lang, a.LabelKey.String()),
		"description": h.resolver.Resolve(a.DescriptionKey, lang, ""),
	}
	if cat, ok := h.catalog.Category(a.Category); ok {
		out["category_label"] = h.resolver.Resolve(cat.LabelKey, lang, cat.ID)
	}
	return out
}

func (h *Handlers) enrich(actions []catalog.Action, lang string) []gin.H {
	out := make([]gin.H, 0, len(actions))
	for _, a := range actions {
		out = append(out, h.enriched(a, lang))
	}
	return out
}

// intQuery parses an optional non-negative integer query parameter. Absent
// parameters return zero, which the engines treat as "use the default".
func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, &paramError{name: name, value: raw}
	}
	return v, nil
}

type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	return "invalid " + e.name + ": " + e.value
}
