package aggregators

import (
	"context"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
)

// CycleDriver runs one aggregation cycle per delivered batch: fold the batch
// into an Aggregate, advance the cumulative tracker, admit to the window
// tracker, checkpoint when due, and publish one immutable snapshot to every
// registered publisher.
//
// The driver assumes exactly-once, in-order batch delivery from the scheduler
// and processes batches strictly sequentially; that sequential contract is
// what makes the merge-based incremental algorithm correct without locks.
type CycleDriver struct {
	cumulativeTracker *CumulativeTracker
	windowTracker     *WindowTracker
	publishers        []SnapshotPublisher
	topN              int
}

func NewCycleDriver(cumulativeTracker *CumulativeTracker, windowTracker *WindowTracker, topN int, publishers ...SnapshotPublisher) *CycleDriver {
	return &CycleDriver{
		cumulativeTracker: cumulativeTracker,
		windowTracker:     windowTracker,
		publishers:        publishers,
		topN:              topN,
	}
}

// ProcessBatch runs the cycle for one batch and returns the published
// snapshot. Aggregation itself is total; the only fallible collaborators
// (checkpoint store, publishers) are contained here and never fail the cycle.
func (d *CycleDriver) ProcessBatch(ctx context.Context, batch *models.RecordBatch) *models.StatisticsSnapshot {
	logger := loggers.Ctx(ctx)

	batchAggregate := models.AggregateFromRecords(batch.Records)
	cumulative := d.cumulativeTracker.Advance(batchAggregate)
	windowed := d.windowTracker.Admit(batch.BatchTime, batchAggregate)

	snapshot := &models.StatisticsSnapshot{
		Cycle:                 d.cumulativeTracker.Cycle(),
		BatchTime:             batch.BatchTime.UTC(),
		WindowCoverageSeconds: int64(d.windowTracker.Coverage().Seconds()),
		WindowPartial:         d.windowTracker.Partial(),
		Cumulative:            models.NewLogStatistics(cumulative, d.topN),
		Windowed:              models.NewLogStatistics(windowed, d.topN),
	}

	d.cumulativeTracker.MaybeCheckpoint(ctx)

	publishFailed := false
	for _, publisher := range d.publishers {
		if err := publisher.Publish(ctx, snapshot); err != nil {
			publishFailed = true
			svcErr := errInternalSnapshotPublishFailed(err)
			metricCyclesProcessedTotal.WithLabelValues(svcErr.Code).Inc()
			logger.Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Int64(loggers.FieldCycle, snapshot.Cycle).
				Msg("snapshot publish failed")
		}
	}
	if !publishFailed {
		metricCyclesProcessedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	}

	logger.Debug().
		Int64(loggers.FieldCycle, snapshot.Cycle).
		Msgf("cycle processed: %d records in batch, %d cumulative, %d windowed",
			batchAggregate.Count, cumulative.Count, windowed.Count)

	return snapshot
}

// Close flushes a final checkpoint. Called once during graceful shutdown,
// after the scheduler has stopped delivering batches.
func (d *CycleDriver) Close(ctx context.Context) error {
	return d.cumulativeTracker.Flush(ctx)
}
