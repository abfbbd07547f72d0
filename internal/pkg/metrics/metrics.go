// Package metrics holds the Prometheus collectors for the payments service.
package metrics

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coliving_payments"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status class.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	OrdersIssuedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_issued_total",
			Help:      "Gateway orders requested, by result.",
		},
		[]string{"result"},
	)

	// BookingsMaterializedTotal: result is created, replayed, support_required or failed.
	BookingsMaterializedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_materialized_total",
			Help:      "Verified payments turned into bookings, by result.",
		},
		[]string{"result"},
	)

	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "Authenticated webhook events by event name and outcome.",
		},
		[]string{"event", "outcome"},
	)

	SignatureRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signature_rejections_total",
			Help:      "Requests rejected for a missing or mismatched signature.",
		},
		[]string{"source"},
	)

	OutOfStockTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "out_of_stock_after_capture_total",
		Help:      "Captured payments whose room had no bed left.",
	})

	SweepRestoredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweep_beds_restored_total",
		Help:      "Beds returned by the reconciliation sweep.",
	})

	OutboxPublishedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outbox_events_published_total",
		Help:      "Booking events relayed to the message broker.",
	})

	DBAcquiredConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "db_acquired_connections",
		Help: "Connections currently acquired from the pool.",
	})
	DBIdleConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "db_idle_connections",
		Help: "Idle connections in the pool.",
	})
	DBEmptyAcquireCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "db_empty_acquire_total",
		Help: "Acquires that had to wait for a connection.",
	})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		OrdersIssuedTotal,
		BookingsMaterializedTotal,
		WebhookEventsTotal,
		SignatureRejectionsTotal,
		OutOfStockTotal,
		SweepRestoredTotal,
		OutboxPublishedTotal,
		DBAcquiredConnections,
		DBIdleConnections,
		DBEmptyAcquireCount,
	)
}

// StartPoolStatsCollector samples pool statistics until ctx is done.
func StartPoolStatsCollector(ctx context.Context, pool *pgxpool.Pool, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stat := pool.Stat()
			DBAcquiredConnections.Set(float64(stat.AcquiredConns()))
			DBIdleConnections.Set(float64(stat.IdleConns()))
			DBEmptyAcquireCount.Set(float64(stat.EmptyAcquireCount()))
		}
	}
}

// Middleware records request count and latency per route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		))

		c.Next()

		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusBucket(c.Writer.Status()),
		).Inc()
	}
}

func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
