// Package metrics defines the custom Prometheus metrics for the Younivent
// platform service. It is the single source of truth for metric names,
// labels, and help strings; the promauto vars register themselves with the
// default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "younivent"

// LoginsTotal counts login attempts.
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

// NotificationsTotal counts notifications emitted by the broadcaster.
// Label:
//   - category: "success", "error" or "info"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications broadcast, by category.",
	},
	[]string{"category"},
)

// ConfirmationsTotal counts confirmation gate outcomes.
// Label:
//   - outcome: "requested", "confirmed", "cancelled" or "rejected"
var ConfirmationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "confirmations_total",
		Help:      "Total number of confirmation gate transitions, by outcome.",
	},
	[]string{"outcome"},
)

// JobsTotal counts simulated jobs that finished.
// Labels:
//   - job: job name ("export", "send-email", "save-edit")
//   - status: "ok", "error" or "rejected" (single-flight guard)
var JobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_total",
		Help:      "Total number of simulated jobs executed, by name and status.",
	},
	[]string{"job", "status"},
)

// JobDuration measures how long a job takes from dequeue to completion.
// Label:
//   - job: job name
var JobDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Duration of simulated job execution from dequeue to completion.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"job"},
)

// JobsQueueDepth tracks the number of jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index
var JobsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "jobs_queue_depth",
		Help:      "Current number of jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
