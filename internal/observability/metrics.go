// Package observability holds the Prometheus collectors served on /metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OperationAddTag    = "add_tag"
	OperationRemoveTag = "remove_tag"
)

var (
	associationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_api",
		Subsystem: "associations",
		Name:      "operations_total",
		Help:      "Exercise-tag link operations grouped by operation and outcome.",
	}, []string{"operation", "outcome"})

	auditCleanupCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_api",
		Subsystem: "audit",
		Name:      "events_purged_total",
		Help:      "Number of audit events removed by retention cleanup.",
	})

	lastCleanupGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "workout_api",
		Subsystem: "audit",
		Name:      "last_cleanup_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful retention cleanup.",
	})
)

func init() {
	prometheus.MustRegister(associationCounter, auditCleanupCounter, lastCleanupGauge)
}

// RecordAssociation counts one link operation. outcome is "success" or an
// error kind such as "not_found".
func RecordAssociation(operation, outcome string) {
	associationCounter.WithLabelValues(operation, outcome).Inc()
}

// RecordAuditCleanup adds purged events and moves the cleanup watermark.
func RecordAuditCleanup(deleted int64, ts time.Time) {
	if deleted > 0 {
		auditCleanupCounter.Add(float64(deleted))
	}
	if !ts.IsZero() {
		lastCleanupGauge.Set(float64(ts.Unix()))
	}
}
