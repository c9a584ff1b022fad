// Package metrics defines and registers all custom Prometheus metrics for the
// event backend. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eventapp"

// ExpensesCreatedTotal counts expenses successfully inserted.
var ExpensesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_created_total",
		Help:      "Total number of expenses created.",
	},
)

// InvitesReceivedTotal counts RSVP submissions successfully stored.
var InvitesReceivedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invites_received_total",
		Help:      "Total number of RSVP invites received.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ActivityQueueDepth tracks entries waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityProcessingDuration measures how long one activity entry takes from
// dequeue to persistence.
var ActivityProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_processing_duration_seconds",
		Help:      "Duration of activity entry processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ActivityErrorsTotal counts activity entries that failed to persist.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity entries that failed processing.",
	},
)
