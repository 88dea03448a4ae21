// Package metrics defines and registers all custom Prometheus metrics for the
// identity service. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// ── Authentication metrics ────────────────────────────────────────────────────

// RegistrationsTotal counts successfully registered users.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// LoginsTotal counts login attempts that reached credential verification.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LoginsThrottledTotal counts logins rejected by the rate limiter before any
// credential check.
var LoginsThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_throttled_total",
		Help:      "Total number of login attempts rejected by the rate limiter.",
	},
)

// ── Event pipeline metrics ────────────────────────────────────────────────────

// EventsPublishedTotal counts auth events handed to the broker successfully.
// Label:
//   - topic: "user.registered" or "user.loggedin"
var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Total number of auth events published to the broker.",
	},
	[]string{"topic"},
)

// EventsFailedTotal counts auth events whose publish attempt failed. These
// events are lost by contract (best-effort delivery).
// Label:
//   - topic: "user.registered" or "user.loggedin"
var EventsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_failed_total",
		Help:      "Total number of auth events that failed to publish.",
	},
	[]string{"topic"},
)

// EventsDroppedTotal counts events dropped because a worker channel was full.
var EventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dropped_total",
		Help:      "Total number of auth events dropped due to a full dispatch queue.",
	},
)

// EventsQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of auth events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
