package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	bookingDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "booking_decisions_total",
			Help:      "Booking approve/reject decisions.",
		},
		[]string{"decision"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingDecisions)
	})
}

// IncHTTP increments the request counter for a handled route.
func IncHTTP(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

// IncBookingDecision counts an owner decision ("approved" or "rejected").
func IncBookingDecision(decision string) {
	bookingDecisions.WithLabelValues(decision).Inc()
}
