// Package monitoring exposes Prometheus metrics for the action engine and
// its HTTP surface.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Engine metrics
	SearchesTotal    *prometheus.CounterVec
	SearchDuration   prometheus.Histogram
	SearchResults    prometheus.Histogram
	SuggestionsTotal prometheus.Counter
	ExecutionsTotal  *prometheus.CounterVec

	// Catalog metrics
	CatalogActions prometheus.Gauge
}

// NewMetrics creates and registers the metrics on a fresh registry,
// returning the registry alongside for the /metrics handler.
func NewMetrics() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "servicetree_http_requests_total",
			Help: "Total HTTP requests by method, path, and status",
		}, []string{"method", "path", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "servicetree_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "servicetree_searches_total",
			Help: "Total searches by language",
		}, []string{"lang"}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "servicetree_search_duration_seconds",
			Help:    "Search latency",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
		SearchResults: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "servicetree_search_results",
			Help:    "Result count per search",
			Buckets: []float64{0, 1, 2, 5, 10},
		}),
		SuggestionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "servicetree_suggestions_total",
			Help: "Total suggestion requests",
		}),
		ExecutionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "servicetree_executions_total",
			Help: "Total action executions by action id",
		}, []string{"action"}),

		CatalogActions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "servicetree_catalog_actions",
			Help: "Number of actions in the catalog",
		}),
	}
	return m, reg
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSearch records one search call.
func (m *Metrics) RecordSearch(lang string, results int, duration time.Duration) {
	m.SearchesTotal.WithLabelValues(lang).Inc()
	m.SearchDuration.Observe(duration.Seconds())
	m.SearchResults.Observe(float64(results))
}

// RecordExecution records one action execution.
func (m *Metrics) RecordExecution(actionID string) {
	m.ExecutionsTotal.WithLabelValues(actionID).Inc()
}
