package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rental_orders",
			Subsystem: "lifecycle",
			Name:      "orders_created_total",
			Help:      "Total number of order creation attempts",
		},
		[]string{"result"},
	)

	orderTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rental_orders",
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Total number of order transition attempts",
		},
		[]string{"action", "result"},
	)
)

const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		orderTransitions,
	)
}
