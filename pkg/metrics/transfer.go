package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TransferMetrics records spreadsheet import/export activity per entity.
type TransferMetrics struct {
	importDuration *prometheus.HistogramVec
	importRows     *prometheus.CounterVec
	exports        *prometheus.CounterVec
}

// NewTransferMetrics registers the import/export metrics on the provided registerer.
func NewTransferMetrics(reg prometheus.Registerer) *TransferMetrics {
	if reg == nil {
		return &TransferMetrics{}
	}
	importDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "import_duration_seconds",
		Help:    "Duration of spreadsheet imports in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity"})
	importRows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "import_rows_total",
		Help: "Imported spreadsheet rows by validation outcome.",
	}, []string{"entity", "outcome"})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exports_total",
		Help: "Spreadsheet exports served.",
	}, []string{"entity"})
	reg.MustRegister(importDuration, importRows, exports)
	return &TransferMetrics{
		importDuration: importDuration,
		importRows:     importRows,
		exports:        exports,
	}
}

// ObserveImport records the duration for an import of the named entity.
func (t *TransferMetrics) ObserveImport(entity string, duration time.Duration) {
	if t == nil || t.importDuration == nil {
		return
	}
	t.importDuration.WithLabelValues(normalizeLabel(entity)).Observe(duration.Seconds())
}

// CountRows adds the valid/invalid row split of a finished import.
func (t *TransferMetrics) CountRows(entity string, valid, invalid int) {
	if t == nil || t.importRows == nil {
		return
	}
	t.importRows.WithLabelValues(normalizeLabel(entity), "valid").Add(float64(valid))
	t.importRows.WithLabelValues(normalizeLabel(entity), "invalid").Add(float64(invalid))
}

// IncExport increments the export counter for the named entity.
func (t *TransferMetrics) IncExport(entity string) {
	if t == nil || t.exports == nil {
		return
	}
	t.exports.WithLabelValues(normalizeLabel(entity)).Inc()
}

func normalizeLabel(entity string) string {
	if entity == "" {
		return "unknown"
	}
	return entity
}
