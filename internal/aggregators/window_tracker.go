package aggregators

import (
	"fmt"
	"time"

	"log-analyzer/internal/models"
)

type windowEntry struct {
	batchTime time.Time
	aggregate *models.Aggregate
}

// WindowTracker maintains an ordered FIFO sequence of per-batch Aggregates
// covering the trailing window length. Each admission evicts the batches that
// aged out and remerges the retained ones from scratch: frequency maps and
// min/max are not safely invertible (a decremented key could falsely read
// zero), so the tracker never subtracts an evicted Aggregate. Windows hold
// windowLength/slideInterval entries, keeping the remerge cheap.
//
// Like the cumulative tracker it is confined to the engine's single
// aggregation goroutine.
type WindowTracker struct {
	windowLength  time.Duration
	slideInterval time.Duration

	entries []windowEntry
	merged  *models.Aggregate
}

// NewWindowTracker validates the window configuration: both durations must be
// positive and the window length must be a whole multiple of the slide
// interval, because the scheduler only ever delivers batches spaced by the
// slide interval. Violations are startup errors, never tolerated at runtime.
func NewWindowTracker(windowLength, slideInterval time.Duration) (*WindowTracker, error) {
	if windowLength <= 0 {
		return nil, fmt.Errorf("window length must be positive, got %s", windowLength)
	}
	if slideInterval <= 0 {
		return nil, fmt.Errorf("slide interval must be positive, got %s", slideInterval)
	}
	if windowLength%slideInterval != 0 {
		return nil, fmt.Errorf("window length %s must be a multiple of slide interval %s", windowLength, slideInterval)
	}

	return &WindowTracker{
		windowLength:  windowLength,
		slideInterval: slideInterval,
		merged:        models.EmptyAggregate(),
	}, nil
}

// Admit appends the batch, evicts every retained entry that would no longer
// fall inside [batchTime-windowLength, batchTime] after this admission, and
// remerges the retained entries into the windowed Aggregate. Batches arrive
// in admission order, so eviction is always from the front.
func (t *WindowTracker) Admit(batchTime time.Time, batchAggregate *models.Aggregate) *models.Aggregate {
	t.entries = append(t.entries, windowEntry{batchTime: batchTime, aggregate: batchAggregate})

	cutoff := batchTime.Add(-t.windowLength + t.slideInterval)
	for len(t.entries) > 0 && t.entries[0].batchTime.Before(cutoff) {
		t.entries[0].aggregate = nil
		t.entries = t.entries[1:]
	}

	merged := models.EmptyAggregate()
	for _, entry := range t.entries {
		merged = models.Merge(merged, entry.aggregate)
	}
	t.merged = merged

	metricWindowRetainedBatches.Set(float64(len(t.entries)))
	return merged
}

// Merged returns the current windowed Aggregate.
func (t *WindowTracker) Merged() *models.Aggregate {
	return t.merged
}

// Coverage is the duration actually represented by the retained batches. It
// never exceeds the configured window length and equals it once steady state
// is reached.
func (t *WindowTracker) Coverage() time.Duration {
	return time.Duration(len(t.entries)) * t.slideInterval
}

// Partial reports whether the window has not yet filled to the configured
// length (expected during the first windowLength/slideInterval cycles).
func (t *WindowTracker) Partial() bool {
	return t.Coverage() < t.windowLength
}
