// Package metrics exposes the Prometheus instruments for the purchase
// path. Collectors register themselves via promauto on first import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Successfully completed orders",
	})

	OrdersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_rejected_total",
		Help: "Rejected purchase attempts by reason",
	}, []string{"reason"})

	TicketsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tickets_issued_total",
		Help: "Ticket records created by sellers",
	})

	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Outgoing notification emails by kind and status",
	}, []string{"kind", "status"})
)
