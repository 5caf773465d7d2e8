package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)
	ClicksApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clicks_applied_total",
			Help: "Total clicks applied to orders",
		},
	)
	OrdersFinished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_finished_total",
			Help: "Total orders completed",
		},
	)
)

func init() {
	prometheus.MustRegister(RLRequests)
	prometheus.MustRegister(RLBlocked)
	prometheus.MustRegister(ClicksApplied)
	prometheus.MustRegister(OrdersFinished)
}
