package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Login counter
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gas_login_total",
			Help: "Total number of login attempts",
		},
	)

	// Sales created, labelled by payment type
	SaleCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gas_sales_total",
			Help: "Total number of sales created by payment type",
		},
		[]string{"payment_type"},
	)

	// Fiado codes issued
	FiadoCodeCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gas_fiado_codes_total",
			Help: "Total number of fiado codes issued",
		},
	)

	// Credit payments recorded
	CreditPaymentCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gas_credit_payments_total",
			Help: "Total number of credit payments recorded",
		},
	)

	// Inventory movements by type
	InventoryMovementCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gas_inventory_movements_total",
			Help: "Total number of inventory movements by type",
		},
		[]string{"type"},
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gas_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Error counters
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gas_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // "invalid_request", "user_not_found", "invalid_password", ...
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gas_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gas_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "query", "insert", "update", "delete"
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(SaleCounter)
	prometheus.MustRegister(FiadoCodeCounter)
	prometheus.MustRegister(CreditPaymentCounter)
	prometheus.MustRegister(InventoryMovementCounter)
	prometheus.MustRegister(HTTPRequestCounter)
	prometheus.MustRegister(AuthErrorCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}

// RecordAuthError records an authentication error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordSale records a created sale by payment type
func RecordSale(paymentType string) {
	SaleCounter.With(prometheus.Labels{"payment_type": paymentType}).Inc()
}

// RecordInventoryMovement records an inventory movement by type
func RecordInventoryMovement(movementType string) {
	InventoryMovementCounter.With(prometheus.Labels{"type": movementType}).Inc()
}
