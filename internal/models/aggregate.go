package models

// Aggregate is a mergeable accumulator over a set of access-log records. It
// reduces any number of records into fixed-size statistics (counts, a content
// size sum with min/max, and frequency maps) so that cumulative and windowed
// views can be maintained by algebraic combination instead of replaying raw
// records.
//
// Merge is associative and commutative: folding records one by one, in any
// order, grouped into any batches, always yields the same Aggregate. That
// property is what lets the cumulative tracker merge one batch per cycle and
// the window tracker remerge its retained batches after eviction.
//
// Example JSON (as persisted inside a checkpoint):
//
//	{
//	  "count": 3,
//	  "sizedCount": 2,
//	  "contentSizeSum": 1200,
//	  "contentSizeMin": 500,
//	  "contentSizeMax": 700,
//	  "statusCounts": {"200": 2, "404": 1},
//	  "endpointCounts": {"/index": 2, "/login": 1},
//	  "ipCounts": {"10.0.0.1": 2, "10.0.0.9": 1},
//	  "userAgentCounts": {"Chrome": 3}
//	}
type Aggregate struct {
	// Count is the number of records folded in, sized or not.
	Count int64 `json:"count"`

	// SizedCount is the number of records with a known content size. The
	// sum/min/max fields below cover exactly these records and are
	// meaningless when SizedCount is zero.
	SizedCount     int64 `json:"sizedCount"`
	ContentSizeSum int64 `json:"contentSizeSum"`
	ContentSizeMin int64 `json:"contentSizeMin"`
	ContentSizeMax int64 `json:"contentSizeMax"`

	StatusCounts    map[int]int64    `json:"statusCounts"`
	EndpointCounts  map[string]int64 `json:"endpointCounts"`
	IPCounts        map[string]int64 `json:"ipCounts"`
	UserAgentCounts map[string]int64 `json:"userAgentCounts"`
}

// EmptyAggregate returns the identity Aggregate: merging it into any other
// Aggregate leaves that Aggregate unchanged.
func EmptyAggregate() *Aggregate {
	return &Aggregate{
		StatusCounts:    map[int]int64{},
		EndpointCounts:  map[string]int64{},
		IPCounts:        map[string]int64{},
		UserAgentCounts: map[string]int64{},
	}
}

// AggregateFromRecords folds a batch of records into one Aggregate.
func AggregateFromRecords(records []*AccessLogRecord) *Aggregate {
	agg := EmptyAggregate()
	for _, record := range records {
		agg.fold(record)
	}
	return agg
}

func (a *Aggregate) fold(record *AccessLogRecord) {
	a.Count++
	a.StatusCounts[record.StatusCode]++
	a.EndpointCounts[record.Endpoint]++
	a.IPCounts[record.IPAddress]++
	if record.UserAgentFamily != "" {
		a.UserAgentCounts[record.UserAgentFamily]++
	}

	if !record.SizeKnown {
		return
	}
	if a.SizedCount == 0 || record.ContentSize < a.ContentSizeMin {
		a.ContentSizeMin = record.ContentSize
	}
	if a.SizedCount == 0 || record.ContentSize > a.ContentSizeMax {
		a.ContentSizeMax = record.ContentSize
	}
	a.SizedCount++
	a.ContentSizeSum += record.ContentSize
}

// Merge combines two Aggregates into a new one. Counts and sums add, min/max
// combine pairwise ignoring a side that never saw a sized record, and map
// fields combine by per-key summation. Neither input is mutated.
func Merge(a, b *Aggregate) *Aggregate {
	merged := &Aggregate{
		Count:           a.Count + b.Count,
		SizedCount:      a.SizedCount + b.SizedCount,
		ContentSizeSum:  a.ContentSizeSum + b.ContentSizeSum,
		StatusCounts:    mergeCounts(a.StatusCounts, b.StatusCounts),
		EndpointCounts:  mergeCounts(a.EndpointCounts, b.EndpointCounts),
		IPCounts:        mergeCounts(a.IPCounts, b.IPCounts),
		UserAgentCounts: mergeCounts(a.UserAgentCounts, b.UserAgentCounts),
	}

	switch {
	case a.SizedCount == 0:
		merged.ContentSizeMin = b.ContentSizeMin
		merged.ContentSizeMax = b.ContentSizeMax
	case b.SizedCount == 0:
		merged.ContentSizeMin = a.ContentSizeMin
		merged.ContentSizeMax = a.ContentSizeMax
	default:
		merged.ContentSizeMin = min(a.ContentSizeMin, b.ContentSizeMin)
		merged.ContentSizeMax = max(a.ContentSizeMax, b.ContentSizeMax)
	}

	return merged
}

// Clone returns a deep copy, so snapshots and checkpoints never alias the
// tracker-owned maps.
func (a *Aggregate) Clone() *Aggregate {
	clone := *a
	clone.StatusCounts = cloneCounts(a.StatusCounts)
	clone.EndpointCounts = cloneCounts(a.EndpointCounts)
	clone.IPCounts = cloneCounts(a.IPCounts)
	clone.UserAgentCounts = cloneCounts(a.UserAgentCounts)
	return &clone
}

// Normalize allocates any nil maps. Aggregates decoded from JSON may carry
// nil maps when the persisted map was empty.
func (a *Aggregate) Normalize() {
	if a.StatusCounts == nil {
		a.StatusCounts = map[int]int64{}
	}
	if a.EndpointCounts == nil {
		a.EndpointCounts = map[string]int64{}
	}
	if a.IPCounts == nil {
		a.IPCounts = map[string]int64{}
	}
	if a.UserAgentCounts == nil {
		a.UserAgentCounts = map[string]int64{}
	}
}

func mergeCounts[K comparable](a, b map[K]int64) map[K]int64 {
	merged := make(map[K]int64, len(a)+len(b))
	for k, v := range a {
		merged[k] += v
	}
	for k, v := range b {
		merged[k] += v
	}
	return merged
}

func cloneCounts[K comparable](counts map[K]int64) map[K]int64 {
	clone := make(map[K]int64, len(counts))
	for k, v := range counts {
		clone[k] = v
	}
	return clone
}
