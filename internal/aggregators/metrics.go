package aggregators

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	// metricCyclesProcessedTotal counts aggregation cycles by outcome. The
	// error_code label is empty for clean cycles and carries the AGG_* code
	// when a snapshot publisher failed (the cycle itself still completed).
	metricCyclesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "cycles_processed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricCheckpointSavedTotal counts checkpoint write attempts. Failed
	// writes carry AGG_9000 and are retried at the next cadence boundary.
	metricCheckpointSavedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "checkpoint_saved_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricCheckpointRestoredTotal counts startup checkpoint restores. A
	// restore with AGG_9001 means the checkpoint was discarded and cumulative
	// statistics restarted from empty.
	metricCheckpointRestoredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "checkpoint_restored_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricWindowRetainedBatches tracks how many per-batch aggregates the
	// window currently retains; below windowLength/slideInterval the window
	// is still warming up.
	metricWindowRetainedBatches = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "window_retained_batches",
		},
	)
)
