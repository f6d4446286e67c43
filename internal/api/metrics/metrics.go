// Package metrics defines all custom Prometheus metrics for the QuickWork
// backend. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quickwork"

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreOpsTotal counts completed store operations.
// Labels:
//   - store: the collection name (e.g. "job_posts", "ratings", "session")
//   - op: the operation (e.g. "fetch_all", "submit", "sign_in")
var StoreOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_ops_total",
		Help:      "Total number of store operations, by store and operation.",
	},
	[]string{"store", "op"},
)

// StoreErrorsTotal counts store operations that ended in an absorbed
// remote-call failure.
var StoreErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of store operations that failed, by store and operation.",
	},
	[]string{"store", "op"},
)

// StoreOpDuration measures how long one store operation takes, remote round
// trip included.
var StoreOpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_op_duration_seconds",
		Help:      "Duration of store operations from invocation to completion.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"store", "op"},
)

// CacheLookupsTotal counts primary-key lookups answered from the local
// collection versus lookups that had to go to the backend.
// Label:
//   - result: "hit" (served locally) or "miss" (remote query issued)
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of by-id cache lookups, labelled by result (hit/miss).",
	},
	[]string{"store", "result"},
)

// UpsertsTotal counts natural-key submissions by the path they took.
// Label:
//   - path: "insert" (no existing row) or "update" (existing row overwritten)
var UpsertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upserts_total",
		Help:      "Total number of upsert submissions, labelled by chosen path.",
	},
	[]string{"store", "path"},
)
