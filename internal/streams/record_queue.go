package streams

import (
	"log-analyzer/internal/models"
)

const defaultQueueBuffer = 8192

// RecordQueue buffers parsed records between the directory tailer and the
// batch scheduler. It is a single lane on purpose: the engine's correctness
// contract is strictly sequential batch processing, so there is exactly one
// consumer and no partitioning.
type RecordQueue struct {
	ch chan *models.AccessLogRecord
}

func NewRecordQueue() *RecordQueue {
	return newRecordQueue(defaultQueueBuffer)
}

func newRecordQueue(buffer int) *RecordQueue {
	return &RecordQueue{ch: make(chan *models.AccessLogRecord, buffer)}
}

// Publish enqueues one record, blocking when the buffer is full so a burst of
// log lines applies backpressure to the tailer instead of being dropped.
func (q *RecordQueue) Publish(record *models.AccessLogRecord) {
	q.ch <- record
}

// Records exposes the consume side of the queue.
func (q *RecordQueue) Records() <-chan *models.AccessLogRecord {
	return q.ch
}

func (q *RecordQueue) Close() {
	close(q.ch)
}
