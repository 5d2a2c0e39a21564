package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics captures request-level signals for the payroll API.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	payRuns  *prometheus.CounterVec
	previews prometheus.Counter
}

// NewHTTPMetrics registers the HTTP instruments on the given registerer.
func NewHTTPMetrics(registerer prometheus.Registerer) *HTTPMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paydeck_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paydeck_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "route"})
	payRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paydeck_pay_runs_total",
		Help: "Persisted pay runs by outcome.",
	}, []string{"outcome"})
	previews := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "paydeck_previews_total",
		Help: "Payroll preview calculations served.",
	})

	registerer.MustRegister(requests, duration, payRuns, previews)

	return &HTTPMetrics{
		requests: requests,
		duration: duration,
		payRuns:  payRuns,
		previews: previews,
	}
}

// IncPayRun counts a pay run attempt with a low-cardinality outcome label.
func (m *HTTPMetrics) IncPayRun(outcome string) {
	if m == nil || m.payRuns == nil {
		return
	}
	m.payRuns.WithLabelValues(outcome).Inc()
}

// IncPreview counts one preview calculation.
func (m *HTTPMetrics) IncPreview() {
	if m == nil || m.previews == nil {
		return
	}
	m.previews.Inc()
}

// GinMiddleware records request count and latency per route. The route label
// uses the matched template, not the raw path, to keep cardinality bounded.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.requests.WithLabelValues(c.Request.Method, route, status).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
