package renderers

import (
	"log-analyzer/internal/shared/metrics"
)

var (
	metricSnapshotsRenderedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRender,
			Name:      "snapshots_rendered_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
