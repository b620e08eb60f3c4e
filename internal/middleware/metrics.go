package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsPath = "/metrics"

// Metrics holds the HTTP collectors of one application on a private
// registry.
type Metrics struct {
	Registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "diet_diary",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "diet_diary",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method", "path"},
		),
	}

	m.Registry.MustRegister(
		m.requests,
		m.duration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

func (m *middleware) Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.metrics == nil || c.Path() == metricsPath {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		// The route template keeps label cardinality bounded.
		path := c.Route().Path
		method := c.Method()
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.metrics.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.metrics.duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}

func (m *middleware) MetricsHandler() fiber.Handler {
	if m.metrics == nil {
		return func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusNotFound)
		}
	}
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.metrics.Registry, promhttp.HandlerOpts{}))
}
