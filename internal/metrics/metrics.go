// Package metrics exposes Prometheus instruments for the similarity server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the server's collectors. Each instance owns its registry,
// so several can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	computations *prometheus.HistogramVec
	batchSize    *prometheus.HistogramVec
	cache        *prometheus.CounterVec
}

// New creates and registers every collector on a fresh registry, along
// with the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dynaalign_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dynaalign_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		computations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dynaalign_computation_duration_seconds",
			Help:    "Time spent computing scores and matrices",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"kind", "status"}),
		batchSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dynaalign_batch_sequences",
			Help:    "Number of sequences per matrix request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"kind"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dynaalign_cache_lookups_total",
			Help: "Response cache lookups by result",
		}, []string{"result"}),
	}

	m.registry.MustRegister(m.requests)
	m.registry.MustRegister(m.latency)
	m.registry.MustRegister(m.computations)
	m.registry.MustRegister(m.batchSize)
	m.registry.MustRegister(m.cache)
	m.registry.MustRegister(collectors.NewGoCollector())
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveComputation records one score or matrix computation over n
// sequences. n is ignored for pairwise kinds when zero.
func (m *Metrics) ObserveComputation(kind string, n int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.computations.WithLabelValues(kind, status).Observe(d.Seconds())
	if n > 0 {
		m.batchSize.WithLabelValues(kind).Observe(float64(n))
	}
}

// CacheHit counts a response served from cache.
func (m *Metrics) CacheHit() {
	m.cache.WithLabelValues("hit").Inc()
}

// CacheMiss counts a lookup that had to compute.
func (m *Metrics) CacheMiss() {
	m.cache.WithLabelValues("miss").Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
