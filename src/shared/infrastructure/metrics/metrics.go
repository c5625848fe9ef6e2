package metrics

import (
	"strconv"
	"time"

	"github.com/iagobrdev/orders-bootcamp/src/shared/domain/apperror"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics colectores Prometheus del servicio.
// Un *Metrics nil es válido y no registra nada.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	orderOps     *prometheus.CounterVec
}

// New crea y registra los colectores en el registerer indicado
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests processed, by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		orderOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_operations_total",
			Help: "Order pipeline operations, by operation and result.",
		}, []string{"operation", "result"}),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.orderOps)
	return m
}

// Middleware mide cada request HTTP usando la ruta registrada (no el path crudo)
func (m *Metrics) Middleware() gin.HandlerFunc {
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
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveOrderOperation cuenta una operación de orden; result es "success" o el tipo de error
func (m *Metrics) ObserveOrderOperation(operation string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = apperror.KindOf(err).String()
	}
	m.orderOps.WithLabelValues(operation, result).Inc()
}
