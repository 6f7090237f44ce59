package ingestors

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	// metricLinesConsumedTotal counts tailed log lines by outcome. Clean
	// parses carry an empty error_code; dropped malformed lines carry
	// ING_1000.
	metricLinesConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_consumed_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
