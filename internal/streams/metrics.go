package streams

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	metricBatchesDeliveredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "batches_delivered_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricBatchRecords = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "batch_records",
			Buckets:   []float64{0, 1, 10, 100, 1000, 10000, 100000},
		},
	)
)
