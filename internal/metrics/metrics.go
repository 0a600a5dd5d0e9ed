// Package metrics declares the Prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoponto_http_requests_total",
		Help: "HTTP requests by route pattern, method and status code",
	}, []string{"route", "method", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ecoponto_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2500},
	}, []string{"route", "method"})

	ProximitySearchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoponto_proximity_searches_total",
		Help: "Proximity searches by entity kind and mode (spatial, category)",
	}, []string{"kind", "mode"})
	ProximityCandidates = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ecoponto_proximity_candidates",
		Help:    "Candidates scanned per proximity search",
		Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000},
	}, []string{"kind"})
	ProximityDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ecoponto_proximity_duration_ms",
		Help:    "Proximity search duration in milliseconds, candidate loading included",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"kind"})

	AssociationMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoponto_category_association_mutations_total",
		Help: "Category association mutations by entity kind and operation",
	}, []string{"kind", "op"})

	CacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoponto_cache_hits_total",
		Help: "Aggregate cache hits by key family",
	}, []string{"family"})
	CacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoponto_cache_misses_total",
		Help: "Aggregate cache misses by key family",
	}, []string{"family"})
	CacheErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoponto_cache_errors_total",
		Help: "Aggregate cache backend errors by operation",
	}, []string{"op"})

	HTTPPanicsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecoponto_http_panics_total",
		Help: "Handler panics recovered by the HTTP middleware",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(ProximitySearchesTotal)
	prometheus.MustRegister(ProximityCandidates)
	prometheus.MustRegister(ProximityDurationMs)
	prometheus.MustRegister(AssociationMutationsTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(CacheErrorsTotal)
	prometheus.MustRegister(HTTPPanicsTotal)
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler { return promhttp.Handler() }
