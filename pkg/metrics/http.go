package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics records per-request metrics mirroring the dashboards the shop
// already had: request totals, latencies, rate-limit hits and cart additions.
type HTTPMetrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	rateLimitHits *prometheus.CounterVec
	cartAdditions prometheus.Counter
	ordersPlaced  prometheus.Counter
}

// NewHTTPMetrics registers the API metrics on a private registry.
func NewHTTPMetrics() *HTTPMetrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests.",
	}, []string{"method", "path", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
	rateLimitHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rate_limit_hits_total",
		Help: "Requests rejected by the rate limiter.",
	}, []string{"window"})
	cartAdditions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_additions_total",
		Help: "Items added to carts.",
	})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders created at checkout.",
	})

	registry.MustRegister(requests, duration, rateLimitHits, cartAdditions, ordersPlaced)

	return &HTTPMetrics{
		registry:      registry,
		requests:      requests,
		duration:      duration,
		rateLimitHits: rateLimitHits,
		cartAdditions: cartAdditions,
		ordersPlaced:  ordersPlaced,
	}
}

// ObserveRequest records one completed request.
func (m *HTTPMetrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	statusLabel := statusClass(status)
	m.requests.WithLabelValues(method, path, statusLabel).Inc()
	m.duration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// IncRateLimitHit counts a rejection for the named window (minute/hour/day).
func (m *HTTPMetrics) IncRateLimitHit(window string) {
	if m == nil || m.rateLimitHits == nil {
		return
	}
	m.rateLimitHits.WithLabelValues(strings.ToLower(window)).Inc()
}

// IncCartAddition counts a successful add-to-cart.
func (m *HTTPMetrics) IncCartAddition() {
	if m == nil || m.cartAdditions == nil {
		return
	}
	m.cartAdditions.Inc()
}

// IncOrderPlaced counts a successful checkout.
func (m *HTTPMetrics) IncOrderPlaced() {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
}

// Handler serves the Prometheus exposition endpoint.
func (m *HTTPMetrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
