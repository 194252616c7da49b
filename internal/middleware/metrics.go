package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP request metrics exposed on /metrics.  The
// histogram mirrors the request-duration instrumentation the service
// has always shipped: duration in seconds labelled by method, route
// and status code, with sub-5ms to 5s buckets.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
}

// NewMetrics registers the request metrics on the default registry,
// which already carries the Go and process collectors.
func NewMetrics() *Metrics {
	return newMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newMetricsWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route", "status_code"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		}, []string{"method", "route", "status_code"}),
	}
	registerer.MustRegister(m.requestDuration, m.requestsTotal)
	return m
}

// Middleware returns an echo middleware observing every request.  The
// route label is the registered route pattern (e.g. /reservations/:id)
// so path parameters do not explode the label cardinality.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let echo commit the error response so the observed
				// status matches what the client sees.
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unknown_route"
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.requestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(method, route, status).Inc()
			return nil
		}
	}
}
