package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "http_requests_total",
			Help:      "HTTP requests by service, route and status.",
		},
		[]string{"service", "method", "route", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shareit",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by service and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "route"},
	)
	bookingEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "booking_events_total",
			Help:      "Booking events by type and outcome.",
		},
		[]string{"type", "outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpLatency, bookingEvents)
	})
}

// Middleware records count and latency per matched route.
func Middleware(service string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := c.Path()
			method := c.Request().Method
			httpRequests.WithLabelValues(service, method, route, strconv.Itoa(status)).Inc()
			httpLatency.WithLabelValues(service, method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func IncBookingEvent(eventType string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	bookingEvents.WithLabelValues(eventType, outcome).Inc()
}

func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
