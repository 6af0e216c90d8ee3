// Package observability owns process-wide metrics and logger construction.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "health_records"

var (
	recordsAccepted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "records_accepted_total",
		Help:      "Records that passed validation, labeled by record type.",
	}, []string{"record_type"})

	recordsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "records_rejected_total",
		Help:      "Records rejected by validation, labeled by record type and error kind.",
	}, []string{"record_type", "kind"})

	recordsReplayed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingest",
		Name:      "records_replayed_total",
		Help:      "Inserts answered with an already stored client record version.",
	}, []string{"record_type"})

	uncheckedBuilds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "persistence",
		Name:      "unchecked_builds_total",
		Help:      "Records rehydrated from storage without validation.",
	})

	recordPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "persistence",
		Name:      "last_record_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent record persisted to Postgres.",
	})
)

func init() {
	prometheus.MustRegister(recordsAccepted, recordsRejected, recordsReplayed, uncheckedBuilds, recordPersistGauge)
}

// RecordAccepted counts a record that passed validation.
func RecordAccepted(recordType string) {
	recordsAccepted.WithLabelValues(recordType).Inc()
}

// RecordRejected counts a validation failure of the given kind.
func RecordRejected(recordType, kind string) {
	if kind == "" {
		kind = "decode"
	}
	recordsRejected.WithLabelValues(recordType, kind).Inc()
}

// RecordReplayed counts an idempotent replay.
func RecordReplayed(recordType string) {
	recordsReplayed.WithLabelValues(recordType).Inc()
}

// RecordUncheckedBuilds counts records rehydrated without validation.
func RecordUncheckedBuilds(n int) {
	uncheckedBuilds.Add(float64(n))
}

// RecordPersisted updates the persistence watermark gauge.
func RecordPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	recordPersistGauge.Set(float64(ts.Unix()))
}
