// Package suggest produces contextual action suggestions for an empty
// search box: first actions whose route matches where the user already is,
// then actions from the categories they recently used. A heuristic, not a
// ranking; no scores are involved.
package suggest

import (
	"strings"

	"go.uber.org/zap"

	"github.com/careshift/servicetree/internal/catalog"
)

// DefaultLimit caps how many suggestions one call returns.
const DefaultLimit = 5

// Context carries the client state a suggestion is derived from.
type Context struct {
	Route           string
	RecentActionIDs []string
	Workspace       catalog.Workspace
}

// Engine computes suggestions over the immutable catalog.
type Engine struct {
	catalog *catalog.Catalog
	limit   int
	log     *zap.Logger
}

// NewEngine creates a suggestion engine. A non-positive limit uses
// DefaultLimit.
func NewEngine(cat *catalog.Catalog, limit int, log *zap.Logger) *Engine {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{catalog: cat, limit: limit, log: log}
}

// Suggest returns up to the configured number of actions. Pass one collects
// route-affine actions; pass two fills the remainder with actions from the
// recently used categories, skipping anything already executed or already
// suggested. Catalog order is preserved within each pass.
func (e *Engine) Suggest(ctx Context) []catalog.Action {
	visible := e.catalog.VisibleTo(ctx.Workspace)
	suggested := make(map[string]bool, e.limit)
	out := make([]catalog.Action, 0, e.limit)

	// Route affinity.
	if ctx.Route != "" {
		for _, a := range visible {
			if len(out) >= e.limit {
				return out
			}
			if strings.HasPrefix(ctx.Route, routePrefix(a.Route)) {
				out = append(out, a)
				suggested[a.ID] = true
			}
		}
	}
	if len(out) >= e.limit {
		return out
	}

	// Recency expansion: pull from the categories of recently executed
	// actions, excluding the recents themselves.
	recent := make(map[string]bool, len(ctx.RecentActionIDs))
	recentCategories := make(map[string]bool)
	for _, id := range ctx.RecentActionIDs {
		recent[id] = true
		if a, ok := e.catalog.Get(id); ok {
			recentCategories[a.Category] = true
		}
	}
	if len(recentCategories) == 0 {
		return out
	}

	for _, a := range visible {
		if len(out) >= e.limit {
			break
		}
		if suggested[a.ID] || recent[a.ID] || !recentCategories[a.Category] {
			continue
		}
		out = append(out, a)
		suggested[a.ID] = true
	}
	return out
}

// routePrefix reduces a route to its first three path segments, dropping any
// query string. "/dashboard/contracts/new?draft=1" -> "/dashboard/contracts/new",
// "/dashboard/calendar" -> "/dashboard/calendar".
func routePrefix(route string) string {
	if i := strings.IndexByte(route, '?'); i >= 0 {
		route = route[:i]
	}
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return "/" + strings.Join(parts, "/")
}
