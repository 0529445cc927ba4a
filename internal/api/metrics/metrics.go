// Package metrics defines all custom Prometheus metrics for the repairdesk
// API. It is the single source of truth for metric names, labels, and help
// strings; registration happens via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "repairdesk"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "unknown_email" or "bad_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// ResetsRequestedTotal counts accepted password-reset requests.
var ResetsRequestedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_requested_total",
		Help:      "Total number of password-reset tokens issued.",
	},
)

// ResetsConsumedTotal counts reset-token redemption attempts.
// Label:
//   - result: "success" or "failure"
var ResetsConsumedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_consumed_total",
		Help:      "Total number of password-reset redemption attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RepairRequestsCreatedTotal counts filed repair requests.
var RepairRequestsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "repair_requests_created_total",
		Help:      "Total number of repair requests filed.",
	},
)

// NotificationsTotal counts delivery attempts made by the notifier.
// Labels:
//   - channel: the delivery channel (e.g. "email")
//   - result:  "sent" or "error"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification delivery attempts, labelled by channel and outcome.",
	},
	[]string{"channel", "result"},
)
