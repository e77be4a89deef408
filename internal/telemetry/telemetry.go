// Package telemetry exposes evaluation and HTTP metrics to Prometheus.
package telemetry

import (
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/recipe-hunter/internal/eval/scorer"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "receval"

type Collector struct {
	queriesTotal        *prometheus.CounterVec
	retrievalDuration   *prometheus.HistogramVec
	runsTotal           *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New builds a collector and registers it with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Evaluated queries by retriever and outcome",
			},
			[]string{"retriever", "outcome"},
		),
		retrievalDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "retrieval_duration_seconds",
				Help:      "Retriever call duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"retriever"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Evaluation runs by status",
			},
			[]string{"status"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "path", "status"},
		),
	}

	reg.MustRegister(
		c.queriesTotal,
		c.retrievalDuration,
		c.runsTotal,
		c.httpRequestsTotal,
		c.httpRequestDuration,
	)
	return c
}

// ObserveQuery implements runner.Observer.
func (c *Collector) ObserveQuery(retrieverName string, r *scorer.Result) {
	c.queriesTotal.WithLabelValues(retrieverName, string(r.Outcome)).Inc()
	if !r.Failed() {
		c.retrievalDuration.WithLabelValues(retrieverName).Observe(r.Latency.Seconds())
	}
}

func (c *Collector) ObserveRun(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.runsTotal.WithLabelValues(status).Inc()
}

// Middleware records request count and duration per route pattern.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			start := time.Now()
			err := next(ec)
			if err != nil {
				ec.Error(err)
			}

			status := strconv.Itoa(ec.Response().Status)
			path := ec.Path()
			if path == "" {
				path = "unknown"
			}
			method := ec.Request().Method

			c.httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			c.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
			return nil
		}
	}
}
