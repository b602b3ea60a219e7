// Package metrics defines all custom Prometheus metrics for the
// storefront client kit. It is the single source of truth for metric
// names, labels, and help strings; everything registers with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// BackendRequestsTotal counts calls against the backend REST API.
// Labels:
//   - endpoint: logical endpoint name (e.g. "list_products", "login")
//   - outcome:  "ok" or "error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of backend API requests, by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// BackendRequestDuration measures backend round-trip time per endpoint.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend API requests from send to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// CartMutationsTotal counts successful cart transitions.
// Label:
//   - op: "add", "update", "remove", or "clear"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of committed cart mutations, by operation.",
	},
	[]string{"op"},
)

// CartStockViolationsTotal counts rejected mutations that would have
// pushed a line past the product's available stock.
var CartStockViolationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_stock_violations_total",
		Help:      "Total number of cart mutations rejected by the stock check.",
	},
)

// OrdersPlacedTotal counts orders successfully created by checkout.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed through checkout.",
	},
)
