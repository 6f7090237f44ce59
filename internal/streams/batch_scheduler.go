package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/models"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/shared/ulid"
)

// BatchScheduler partitions time into discrete processing cycles. It drains
// records from the queue as they arrive and, on every slide-interval tick,
// cuts one timestamped RecordBatch and hands it to the cycle driver. A tick
// with no new records still runs a full cycle so the window keeps aging and
// the snapshot keeps republishing.
//
// One goroutine owns the pending buffer, the tick loop and the driver call;
// that single thread of control is the engine's sequential delivery
// guarantee.
//
//go:generate mockgen -source=batch_scheduler.go -destination=./mocks/batch_scheduler_mock.go -package=mocks
type BatchScheduler interface {
	Start(ctx context.Context)
	Stop()
}

type batchScheduler struct {
	queue         *RecordQueue
	driver        *aggregators.CycleDriver
	slideInterval time.Duration

	pending []*models.AccessLogRecord

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewBatchScheduler(queue *RecordQueue, driver *aggregators.CycleDriver, slideInterval time.Duration, logger loggers.Logger) BatchScheduler {
	return &batchScheduler{
		queue:         queue,
		driver:        driver,
		slideInterval: slideInterval,
		stopCh:        make(chan struct{}),
		logger:        logger,
	}
}

func (s *batchScheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop waits for the scheduler goroutine to exit. The caller flushes the
// final checkpoint through the driver afterwards.
func (s *batchScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *batchScheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.slideInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case record, ok := <-s.queue.Records():
			if !ok {
				return
			}
			s.pending = append(s.pending, record)
		case tickTime := <-ticker.C:
			s.runCycle(ctx, tickTime)
		}
	}
}

// runCycle cuts the pending records into one batch and drives a full
// aggregation cycle. Panic recovery keeps a poisoned batch from killing the
// scheduler goroutine.
func (s *batchScheduler) runCycle(ctx context.Context, tickTime time.Time) {
	batch := &models.RecordBatch{
		BatchID:   ulid.NewULID(),
		BatchTime: tickTime.UTC(),
		Records:   s.pending,
	}
	s.pending = nil

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("scheduler panic recovered: %v", r)

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricBatchesDeliveredTotal.WithLabelValues(svcErr.Code).Inc()
		}
	}()

	cycleCtx := s.logger.With().
		Str(loggers.FieldBatchID, batch.BatchID).
		Logger().WithContext(ctx)

	s.driver.ProcessBatch(cycleCtx, batch)

	metricBatchesDeliveredTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricBatchRecords.Observe(float64(len(batch.Records)))
}
