package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instrumentation for the API server.
type Metrics struct {
	AnalysesTotal  prometheus.Counter
	AnalysisErrors *prometheus.CounterVec // labels: reason
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	FetchDur       prometheus.Histogram
	AnalyzeDur     prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics registers and returns all Prometheus metrics on a private
// registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "signalscope_analyses_total",
			Help: "Total analysis requests served successfully",
		}),
		AnalysisErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signalscope_analysis_errors_total",
			Help: "Analysis requests failed (by reason)",
		}, []string{"reason"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "signalscope_bar_cache_hits_total",
			Help: "Price series served from the bar cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "signalscope_bar_cache_misses_total",
			Help: "Price series fetched from the upstream provider",
		}),
		FetchDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "signalscope_fetch_duration_seconds",
			Help:    "Market data retrieval latency (cache or network)",
			Buckets: prometheus.DefBuckets,
		}),
		AnalyzeDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "signalscope_analysis_duration_seconds",
			Help:    "Indicator and signal computation latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.AnalysesTotal,
		m.AnalysisErrors,
		m.CacheHits,
		m.CacheMisses,
		m.FetchDur,
		m.AnalyzeDur,
	)
	return m
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
