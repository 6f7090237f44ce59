package models

import "time"

// AccessLogRecord is one parsed web-server access-log entry. Records are
// immutable once parsed; the ingestion layer drops lines it cannot parse, so
// every record reaching the aggregation engine is well formed.
type AccessLogRecord struct {
	IPAddress    string
	ClientIdentd string // empty when the log line carried "-"
	UserID       string // empty when the log line carried "-"
	ReceivedAt   time.Time
	Method       string
	Endpoint     string
	Protocol     string
	StatusCode   int

	// ContentSize is the response size in bytes. SizeKnown is false when the
	// log line carried "-" instead of a byte count; such records are excluded
	// from content-size statistics but still counted as requests.
	ContentSize int64
	SizeKnown   bool

	// UserAgentFamily is the normalized user-agent family for combined-format
	// lines, empty for common-format lines.
	UserAgentFamily string
}

// RecordBatch is one processing cycle's worth of records, delimited by the
// batch scheduler. BatchTime is the tick that closed the batch; batches are
// always delivered to the engine in BatchTime order, exactly once.
type RecordBatch struct {
	BatchID   string
	BatchTime time.Time
	Records   []*AccessLogRecord
}
