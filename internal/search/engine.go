package search

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/careshift/servicetree/internal/catalog"
	"github.com/careshift/servicetree/internal/i18n"
	"github.com/careshift/servicetree/internal/textnorm"
)

// Default search options.
const (
	DefaultLimit    = 10
	DefaultMinScore = 5
)

// Options tune one search call. The zero value applies the defaults.
type Options struct {
	Limit     int
	MinScore  int
	Category  string
	Workspace catalog.Workspace
}

// Result is an action enriched with resolved display text and its relevance
// score. Scores are only meaningful relative to other results of the same
// query.
type Result struct {
	Action        catalog.Action `json:"action"`
	Label         string         `json:"label"`
	Description   string         `json:"description"`
	CategoryLabel string         `json:"category_label"`
	Score         int            `json:"score"`
}

// Facet is a category-level aggregate over the full catalog, independent of
// any query or workspace filter.
type Facet struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// Engine ranks catalog actions against free-text queries. It is a pure
// function of the immutable catalog plus its inputs; the only internal state
// is a per-language cache of resolved, normalized catalog text.
type Engine struct {
	catalog  *catalog.Catalog
	resolver *i18n.Resolver
	log      *zap.Logger

	mu   sync.RWMutex
	docs map[string][]document
}

// NewEngine creates a search engine over the given catalog and resolver.
func NewEngine(cat *catalog.Catalog, resolver *i18n.Resolver, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		catalog:  cat,
		resolver: resolver,
		log:      log,
		docs:     make(map[string][]document),
	}
}

// Search scores every visible catalog action against the query and returns
// the ranked results. Queries below the two-character threshold yield an
// empty result set; that is a policy, not an error.
func (e *Engine) Search(query, lang string, opts Options) []Result {
	tokens := tokenize(query)
	if tokens == nil {
		return nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	minScore := opts.MinScore
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	type scored struct {
		doc   *document
		score int
	}

	docs := e.documents(lang)
	var results []scored
	for i := range docs {
		d := &docs[i]
		if !d.action.VisibleIn(opts.Workspace) {
			continue
		}
		if opts.Category != "" && d.action.Category != opts.Category {
			continue
		}
		if s := d.score(tokens); s >= minScore {
			results = append(results, scored{doc: d, score: s})
		}
	}

	// Stable: catalog order is the tie-break.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = Result{
			Action:        r.doc.action,
			Label:         r.doc.label,
			Description:   r.doc.description,
			CategoryLabel: e.categoryLabel(r.doc.action.Category, lang),
			Score:         r.score,
		}
	}
	return out
}

// Facets returns one entry per category with its full-catalog member count.
// Counts ignore queries and workspace filters; categories with zero members
// are still listed. Order follows category declaration order.
func (e *Engine) Facets(lang string) []Facet {
	counts := make(map[string]int)
	for _, a := range e.catalog.Actions() {
		counts[a.Category]++
	}

	categories := e.catalog.Categories()
	facets := make([]Facet, len(categories))
	for i, c := range categories {
		facets[i] = Facet{
			ID:    c.ID,
			Label: e.resolver.Resolve(c.LabelKey, lang, c.ID),
			Icon:  c.Icon,
			Color: c.Color,
			Count: counts[c.ID],
		}
	}
	return facets
}

// documents returns the per-language document cache, building it on first
// use. The catalog is immutable, so a built slice never goes stale.
func (e *Engine) documents(lang string) []document {
	e.mu.RLock()
	docs, ok := e.docs[lang]
	e.mu.RUnlock()
	if ok {
		return docs
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if docs, ok := e.docs[lang]; ok {
		return docs
	}

	actions := e.catalog.Actions()
	docs = make([]document, len(actions))
	for i, a := range actions {
		label := e.resolver.Resolve(a.LabelKey, lang, a.LabelKey.String())
		desc := e.resolver.Resolve(a.DescriptionKey, lang, "")

		keywords := make([]string, len(a.Keywords))
		for j, kw := range a.Keywords {
			keywords[j] = textnorm.Normalize(kw)
		}

		docs[i] = document{
			action:       a,
			label:        label,
			description:  desc,
			normLabel:    textnorm.Normalize(label),
			normDesc:     textnorm.Normalize(desc),
			normKeywords: keywords,
			normCategory: textnorm.Normalize(a.Category),
		}
	}
	e.docs[lang] = docs
	e.log.Debug("built search documents", zap.String("lang", lang), zap.Int("count", len(docs)))
	return docs
}

func (e *Engine) categoryLabel(id, lang string) string {
	c, ok := e.catalog.Category(id)
	if !ok {
		return id
	}
	return e.resolver.Resolve(c.LabelKey, lang, c.ID)
}
