// Package metrics counts record and string operations and writes them in
// the node exporter textfile format.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ssargent/fwinfo/pkg/cstr"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for one fwinfo run
type Metrics struct {
	registry *prometheus.Registry

	recordsEncodedTotal *prometheus.CounterVec
	recordEncodedBytes  *prometheus.HistogramVec
	recordsDecodedTotal *prometheus.CounterVec
	stringsRejected     *prometheus.CounterVec

	storageOperationsTotal   *prometheus.CounterVec
	storageOperationDuration *prometheus.HistogramVec
	journalNames             prometheus.Gauge
	journalSizeBytes         prometheus.Gauge
}

// NewMetrics creates the metrics on a private registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		recordsEncodedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fwinfo_records_encoded_total",
				Help: "Total number of records encoded",
			},
			[]string{"kind"},
		),

		recordEncodedBytes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fwinfo_record_encoded_bytes",
				Help:    "Encoded record size in bytes",
				Buckets: prometheus.ExponentialBuckets(16, 2, 10),
			},
			[]string{"kind"},
		),

		recordsDecodedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fwinfo_records_decoded_total",
				Help: "Total number of record decode attempts",
			},
			[]string{"kind", "status"},
		),

		stringsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fwinfo_strings_rejected_total",
				Help: "Total number of strings rejected during construction",
			},
			[]string{"reason"},
		),

		storageOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fwinfo_storage_operations_total",
				Help: "Total number of journal and catalog operations",
			},
			[]string{"store", "operation", "status"},
		),

		storageOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fwinfo_storage_operation_duration_seconds",
				Help:    "Journal and catalog operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"store", "operation"},
		),

		journalNames: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fwinfo_journal_names",
				Help: "Number of distinct record names in the journal",
			},
		),

		journalSizeBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fwinfo_journal_size_bytes",
				Help: "Size of the journal file in bytes",
			},
		),
	}
}

// Registry exposes the private registry for gathering
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordEncoded records one encoded record of the given size
func (m *Metrics) RecordEncoded(kind string, bytes int) {
	m.recordsEncodedTotal.WithLabelValues(kind).Inc()
	m.recordEncodedBytes.WithLabelValues(kind).Observe(float64(bytes))
}

// RecordDecoded records a decode attempt
func (m *Metrics) RecordDecoded(kind string, success bool) {
	m.recordsDecodedTotal.WithLabelValues(kind, status(success)).Inc()
}

// StringRejected records a rejected string under the reason derived from err
func (m *Metrics) StringRejected(err error) {
	m.stringsRejected.WithLabelValues(RejectReason(err)).Inc()
}

// RecordStorageOperation records a journal or catalog operation
func (m *Metrics) RecordStorageOperation(store, operation string, success bool, duration time.Duration) {
	m.storageOperationsTotal.WithLabelValues(store, operation, status(success)).Inc()
	m.storageOperationDuration.WithLabelValues(store, operation).Observe(duration.Seconds())
}

// UpdateJournalStats updates journal statistics
func (m *Metrics) UpdateJournalStats(names int, dataSize int64) {
	m.journalNames.Set(float64(names))
	m.journalSizeBytes.Set(float64(dataSize))
}

// WriteTextfile writes every metric to path for the node exporter
// textfile collector. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// RejectReason maps a string construction error to a metric label.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, cstr.ErrInvalidChar):
		return "invalid_char"
	case errors.Is(err, cstr.ErrInteriorNul):
		return "interior_nul"
	case errors.Is(err, cstr.ErrNotNulTerminated):
		return "not_nul_terminated"
	case errors.Is(err, cstr.ErrBufferTooSmall):
		return "buffer_too_small"
	default:
		return "other"
	}
}

func status(success bool) string {
	if success {
		return statusSuccess
	}
	return statusError
}
