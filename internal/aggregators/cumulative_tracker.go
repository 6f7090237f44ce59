package aggregators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/stores"
)

// defaultCheckpointBudget bounds one checkpoint write attempt so a slow store
// never stalls admission of the next batch; a timed-out write is retried at
// the next cadence boundary.
const defaultCheckpointBudget = 2 * time.Second

// CumulativeTracker owns the single Aggregate covering every record ever
// admitted, plus a monotonically increasing cycle counter. It is confined to
// the engine's one aggregation goroutine: Advance and the checkpoint methods
// must never be called concurrently.
type CumulativeTracker struct {
	cumulative *models.Aggregate
	cycle      int64

	cadence          int64
	checkpointBudget time.Duration
	checkpointStore  stores.CheckpointStore
}

func NewCumulativeTracker(checkpointStore stores.CheckpointStore, cadence int) (*CumulativeTracker, error) {
	if cadence <= 0 {
		return nil, fmt.Errorf("checkpoint cadence must be positive, got %d", cadence)
	}
	return &CumulativeTracker{
		cumulative:       models.EmptyAggregate(),
		cadence:          int64(cadence),
		checkpointBudget: defaultCheckpointBudget,
		checkpointStore:  checkpointStore,
	}, nil
}

// Restore rehydrates state from the most recent checkpoint. A missing
// checkpoint means a fresh start; an unreadable one is discarded with a loud
// warning and the tracker starts from empty, losing only the persisted
// history (bounded-loss policy, never silent corruption).
func (t *CumulativeTracker) Restore(ctx context.Context) {
	logger := loggers.Ctx(ctx)

	checkpoint, err := t.checkpointStore.Load(ctx)
	if errors.Is(err, stores.ErrCheckpointNotFound) {
		logger.Info().Msg("no checkpoint found, starting cumulative statistics from empty")
		return
	}
	if err != nil {
		svcErr := errInternalCheckpointRestoreFailed(err)
		metricCheckpointRestoredTotal.WithLabelValues(svcErr.Code).Inc()
		logger.Warn().
			Err(err).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("discarding unreadable checkpoint, cumulative statistics restart from empty")
		return
	}

	t.cumulative = checkpoint.Cumulative
	t.cycle = checkpoint.Cycle
	metricCheckpointRestoredTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Int64(loggers.FieldCycle, t.cycle).
		Msgf("restored cumulative statistics from checkpoint (%d records)", t.cumulative.Count)
}

// Advance merges one batch Aggregate into the cumulative state and increments
// the cycle counter. It is total: it never fails and has no side effect
// beyond the internal state mutation.
func (t *CumulativeTracker) Advance(batchAggregate *models.Aggregate) *models.Aggregate {
	t.cumulative = models.Merge(t.cumulative, batchAggregate)
	t.cycle++
	return t.cumulative
}

func (t *CumulativeTracker) Cycle() int64 {
	return t.cycle
}

func (t *CumulativeTracker) Cumulative() *models.Aggregate {
	return t.cumulative
}

// MaybeCheckpoint persists the cumulative state when the cycle counter hits
// the configured cadence. A failed write is logged and retried at the next
// cadence boundary; in-memory state is never affected.
func (t *CumulativeTracker) MaybeCheckpoint(ctx context.Context) {
	if t.cycle%t.cadence != 0 {
		return
	}
	if err := t.checkpoint(ctx); err != nil {
		loggers.Ctx(ctx).Warn().
			Err(err).
			Int64(loggers.FieldCycle, t.cycle).
			Msg("checkpoint write failed, retrying at next cadence boundary")
	}
}

// Flush persists the cumulative state unconditionally. Called on graceful
// shutdown so the last committed checkpoint reflects the final cycle.
func (t *CumulativeTracker) Flush(ctx context.Context) error {
	return t.checkpoint(ctx)
}

func (t *CumulativeTracker) checkpoint(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.checkpointBudget)
	defer cancel()

	err := t.checkpointStore.Save(ctx, &stores.Checkpoint{
		Cycle:      t.cycle,
		Cumulative: t.cumulative.Clone(),
		SavedAt:    time.Now().UTC(),
	})
	if err != nil {
		svcErr := errInternalCheckpointWriteFailed(err)
		metricCheckpointSavedTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	metricCheckpointSavedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return nil
}
