package restapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "evm_chains"

// Metrics holds the Prometheus collectors of the chain API. A nil *Metrics records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	lookups         *prometheus.CounterVec
	searchCache     *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	chainsLoaded    prometheus.Gauge
}

// NewMetrics creates the collectors on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookups_total",
			Help:      "Chain lookups by kind and outcome.",
		}, []string{"kind", "result"}),
		searchCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "search_cache_total",
			Help:      "Search cache hits and misses.",
		}, []string{"result"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		chainsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "chains_loaded",
			Help:      "Number of chains in the served registry.",
		}),
	}
	m.registry.MustRegister(
		m.lookups,
		m.searchCache,
		m.requests,
		m.requestDuration,
		m.chainsLoaded,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SetChainsLoaded records the size of the served registry.
func (m *Metrics) SetChainsLoaded(n int) {
	if m == nil {
		return
	}
	m.chainsLoaded.Set(float64(n))
}

func (m *Metrics) observeLookup(kind string, hit bool) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(kind, hitLabel(hit)).Inc()
}

func (m *Metrics) observeSearchCache(hit bool) {
	if m == nil {
		return
	}
	m.searchCache.WithLabelValues(hitLabel(hit)).Inc()
}

// Middleware records request counts and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func hitLabel(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
