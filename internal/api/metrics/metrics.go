// Package metrics defines and registers the custom Prometheus metrics for
// the notes API. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes"

// NotesCreatedTotal counts notes persisted successfully.
var NotesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of notes created.",
	},
)

// NotesDeletedTotal counts notes deleted by their owner.
var NotesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of notes deleted.",
	},
)

// AuthFailuresTotal counts failed login attempts.
// Label:
//   - reason: "unknown_email" or "bad_password"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed login attempts, by reason.",
	},
	[]string{"reason"},
)

// LoginsThrottledTotal counts logins rejected by the failed-login throttle.
var LoginsThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_throttled_total",
		Help:      "Total number of logins rejected by the throttle.",
	},
)

// ActivityRecordedTotal counts lifecycle events persisted to the trail.
// Label:
//   - action: "created", "updated", or "deleted"
var ActivityRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_recorded_total",
		Help:      "Total number of note lifecycle events recorded.",
	},
	[]string{"action"},
)

// ActivityErrorsTotal counts lifecycle events that failed to persist.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of note lifecycle events that failed to record.",
	},
	[]string{"reason"},
)

// ActivityQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
