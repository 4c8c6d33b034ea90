package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	ExposuresRecorded   *prometheus.CounterVec
	ConversionsRecorded *prometheus.CounterVec
	ExperimentsCreated  prometheus.Counter
	ResultsComputed     prometheus.Counter
	UsersRegistered     prometheus.Counter
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		ExposuresRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exposures_recorded_total",
				Help: "Total number of exposure calls recorded",
			},
			[]string{"scope"},
		),
		ConversionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_recorded_total",
				Help: "Total number of conversion calls recorded",
			},
			[]string{"scope"},
		),
		ExperimentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "experiments_created_total",
			Help: "Total number of experiments created",
		}),
		ResultsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "results_computed_total",
			Help: "Total number of result snapshots computed",
		}),
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of users registered",
		}),
	}
}

// Middleware returns an echo middleware recording request counts and
// latencies.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			labels := []string{c.Request().Method, c.Path(), strconv.Itoa(status)}
			m.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			m.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
