package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "endpoint"},
	)

	// OrdersTotal tracks order creation attempts by outcome
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total number of order creation attempts",
		},
		[]string{"status"},
	)

	// OrderTotalPaisa tracks computed order totals
	OrderTotalPaisa = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_total_paisa",
			Help:    "Computed order totals in paisa",
			Buckets: []float64{5000, 10000, 25000, 50000, 100000, 250000},
		},
	)

	// WaitlistSignupsTotal tracks successful waitlist signups
	WaitlistSignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "waitlist_signups_total",
			Help: "Total number of waitlist signups",
		},
	)

	// CatalogRecipes tracks the number of recipes in the catalog
	CatalogRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_recipes",
			Help: "Number of recipes in the catalog",
		},
	)
)

// Order creation outcomes recorded in OrdersTotal.
const (
	OrderOutcomeCreated          = "created"
	OrderOutcomeValidationFailed = "validation_failed"
	OrderOutcomeRecipeNotFound   = "recipe_not_found"
)

// PrometheusMiddleware creates a Gin middleware for automatic metrics collection
func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(
			serviceName,
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()

		RequestDuration.WithLabelValues(
			serviceName,
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}
