// Package metrics defines and registers all custom Prometheus metrics for the
// Movian API. It is the single source of truth for metric names, labels, and
// help strings; metrics register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "movian"

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "user" or "admin"
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by principal kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// RegistrationsTotal counts registration attempts that produced a pending
// verification record.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registrations awaiting email verification.",
	},
)

// WatchlistOpsTotal counts watchlist mutations.
// Labels:
//   - op: "add" or "remove"
//   - result: "created" or "existing" for adds, "removed" for removes
var WatchlistOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "watchlist_ops_total",
		Help:      "Total number of watchlist add/remove operations, by dedup result.",
	},
	[]string{"op", "result"},
)

// CommentsPostedTotal counts comments accepted for storage.
var CommentsPostedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_posted_total",
		Help:      "Total number of comments posted.",
	},
)

// ModerationActionsTotal counts admin moderation operations.
// Label:
//   - action: "ban_toggle", "delete_comment", or "reply"
var ModerationActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_actions_total",
		Help:      "Total number of admin moderation actions.",
	},
	[]string{"action"},
)

// UpstreamRequestDuration measures proxied movie-catalogue call latency.
// Labels:
//   - endpoint: "search", "detail", or "trailer"
//   - outcome: "success" or "error"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of proxied OMDb/YouTube lookups, including cache hits.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint", "outcome"},
)
