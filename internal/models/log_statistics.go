package models

import (
	"sort"
	"time"
)

// RankedCount is one entry of a ranked frequency listing.
type RankedCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// ContentSizeStats holds content-size figures over the records that carried a
// known response size.
type ContentSizeStats struct {
	SizedCount int64   `json:"sizedCount"`
	Average    float64 `json:"average"`
	Min        int64   `json:"min"`
	Max        int64   `json:"max"`
}

// LogStatistics is the user-facing, derived view of one Aggregate: totals,
// content-size figures, the full status-code histogram and ranked top-N
// listings. It owns copies of every map and slice so callers can hold it
// across cycles without racing the trackers.
type LogStatistics struct {
	RequestCount int64 `json:"requestCount"`

	// ContentSize is nil when no record carried a known response size;
	// renderers report "no data" instead of a fabricated zero average.
	ContentSize *ContentSizeStats `json:"contentSize,omitempty"`

	StatusCounts   map[int]int64 `json:"statusCounts"`
	TopEndpoints   []RankedCount `json:"topEndpoints"`
	TopIPAddresses []RankedCount `json:"topIpAddresses"`
	TopUserAgents  []RankedCount `json:"topUserAgents"`
}

// NewLogStatistics derives statistics from an Aggregate. Rankings hold at most
// topN entries, ordered by descending count with ascending key as the
// tie-break so equal counts always list deterministically.
func NewLogStatistics(agg *Aggregate, topN int) *LogStatistics {
	stats := &LogStatistics{
		RequestCount:   agg.Count,
		StatusCounts:   cloneCounts(agg.StatusCounts),
		TopEndpoints:   topCounts(agg.EndpointCounts, topN),
		TopIPAddresses: topCounts(agg.IPCounts, topN),
		TopUserAgents:  topCounts(agg.UserAgentCounts, topN),
	}

	if agg.SizedCount > 0 {
		stats.ContentSize = &ContentSizeStats{
			SizedCount: agg.SizedCount,
			Average:    float64(agg.ContentSizeSum) / float64(agg.SizedCount),
			Min:        agg.ContentSizeMin,
			Max:        agg.ContentSizeMax,
		}
	}

	return stats
}

func topCounts(counts map[string]int64, n int) []RankedCount {
	ranked := make([]RankedCount, 0, len(counts))
	for key, count := range counts {
		ranked = append(ranked, RankedCount{Key: key, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Key < ranked[j].Key
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// StatisticsSnapshot is the immutable per-cycle output of the engine: the
// cumulative view over every record ever admitted and the windowed view over
// the trailing window. It is handed to publishers (HTTP readers, the HTML
// renderer) which may read it at leisure without racing the next cycle.
type StatisticsSnapshot struct {
	Cycle     int64     `json:"cycle"`
	BatchTime time.Time `json:"batchTime"`

	// WindowCoverageSeconds is the duration actually covered by the windowed
	// view. During warm-up it is smaller than the configured window length
	// and WindowPartial is true; a partial window is valid, not an error.
	WindowCoverageSeconds int64 `json:"windowCoverageSeconds"`
	WindowPartial         bool  `json:"windowPartial"`

	Cumulative *LogStatistics `json:"cumulative"`
	Windowed   *LogStatistics `json:"windowed"`
}
