package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	entries       prometheus.Gauge
	snapshotSaves *prometheus.CounterVec
	snapshotLoads *prometheus.CounterVec
	signals       *prometheus.CounterVec
	candles       *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		entries: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "buyzone_watchlist_entries",
				Help: "Current number of watchlist entries",
			},
		),
		snapshotSaves: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buyzone_snapshot_saves_total",
				Help: "Total snapshot save attempts",
			},
			[]string{"result"},
		),
		snapshotLoads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buyzone_snapshot_loads_total",
				Help: "Total snapshot load attempts by outcome",
			},
			[]string{"result"},
		),
		signals: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buyzone_signals_derived_total",
				Help: "Total zone/confidence derivations",
			},
			[]string{"type"},
		),
		candles: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buyzone_candles_generated_total",
				Help: "Total synthetic candles generated",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "buyzone_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordEntries records the current watchlist size.
func (r *Recorder) RecordEntries(n int) {
	r.entries.Set(float64(n))
}

// RecordSnapshotSave records a snapshot save attempt.
func (r *Recorder) RecordSnapshotSave(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	r.snapshotSaves.WithLabelValues(result).Inc()
}

// RecordSnapshotLoad records a snapshot load outcome (loaded, absent, malformed, error).
func (r *Recorder) RecordSnapshotLoad(result string) {
	r.snapshotLoads.WithLabelValues(result).Inc()
}

// RecordSignalDerived records a zone/confidence derivation per asset type.
func (r *Recorder) RecordSignalDerived(typ string) {
	r.signals.WithLabelValues(typ).Inc()
}

// RecordCandlesGenerated records a generated candle series.
func (r *Recorder) RecordCandlesGenerated(symbol string, n int) {
	r.candles.WithLabelValues(symbol).Add(float64(n))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
