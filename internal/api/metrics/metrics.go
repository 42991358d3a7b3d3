// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings.
//
// The vars below register themselves with the default Prometheus registry at
// import time via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts created accounts.
// Label:
//   - role: "admin" or "user", as derived from the admin allow-list
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by assigned role.",
	},
	[]string{"role"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersPlacedTotal counts successfully placed orders.
// Label:
//   - payment: "mock_card" when the order went through the payment form,
//     "none" for plain checkout
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed, by payment path.",
	},
	[]string{"payment"},
)

// PaymentsDeclinedTotal counts payment attempts rejected by the card checks.
var PaymentsDeclinedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_declined_total",
		Help:      "Total number of payment attempts declined.",
	},
)

// OrdersCompletedTotal counts orders transitioned to Completed by an admin.
var OrdersCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_completed_total",
		Help:      "Total number of orders marked completed.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts products added to the catalog.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// CommentsPostedTotal counts comments posted on product pages.
var CommentsPostedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_posted_total",
		Help:      "Total number of product comments posted.",
	},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactMessagesTotal counts contact form submissions accepted for delivery.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact form messages accepted.",
	},
)
