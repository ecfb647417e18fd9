package webapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gridpath/pkg/engine/search"
)

// Metrics holds the search metrics exposed on /metrics. Each Metrics has its own
// registry so servers (and tests) never share counters.
type Metrics struct {
	registry *prometheus.Registry

	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	duration prometheus.Histogram
	rejected prometheus.Counter
}

// NewMetrics registers the search metrics and the Go runtime collectors
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Searches run, by outcome.",
		}, []string{"outcome"}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_expanded_cells",
			Help:    "Cells expanded per search.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Wall time per search.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}),
		rejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_requests_rejected_total",
			Help: "Solve requests rejected before searching.",
		}),
	}
}

// Observe records one finished search
func (m *Metrics) Observe(res search.Result, elapsed time.Duration) {
	m.searches.WithLabelValues(res.Outcome.String()).Inc()
	m.expanded.Observe(float64(res.Expanded))
	m.duration.Observe(elapsed.Seconds())
}

// Reject records a request refused by validation
func (m *Metrics) Reject() {
	m.rejected.Inc()
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
