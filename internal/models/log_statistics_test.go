package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogStatistics_DerivesTotalsAndAverage(t *testing.T) {
	t.Parallel()

	agg := AggregateFromRecords([]*AccessLogRecord{
		sizedRecord("10.0.0.1", "/index", 200, 500),
		sizedRecord("10.0.0.1", "/index", 200, 700),
		unsizedRecord("10.0.0.9", "/login", 404),
	})

	stats := NewLogStatistics(agg, 10)

	assert.Equal(t, int64(3), stats.RequestCount)
	require.NotNil(t, stats.ContentSize)
	assert.Equal(t, int64(2), stats.ContentSize.SizedCount)
	assert.Equal(t, float64(600), stats.ContentSize.Average)
	assert.Equal(t, int64(500), stats.ContentSize.Min)
	assert.Equal(t, int64(700), stats.ContentSize.Max)
	assert.Equal(t, map[int]int64{200: 2, 404: 1}, stats.StatusCounts)
}

func TestNewLogStatistics_NoSizedRecordsMeansNoContentSize(t *testing.T) {
	t.Parallel()

	agg := AggregateFromRecords([]*AccessLogRecord{
		unsizedRecord("10.0.0.9", "/login", 404),
	})

	stats := NewLogStatistics(agg, 10)

	assert.Equal(t, int64(1), stats.RequestCount)
	assert.Nil(t, stats.ContentSize)
}

func TestNewLogStatistics_EmptyAggregate(t *testing.T) {
	t.Parallel()

	stats := NewLogStatistics(EmptyAggregate(), 10)

	assert.Equal(t, int64(0), stats.RequestCount)
	assert.Nil(t, stats.ContentSize)
	assert.Empty(t, stats.StatusCounts)
	assert.Empty(t, stats.TopEndpoints)
	assert.Empty(t, stats.TopIPAddresses)
	assert.Empty(t, stats.TopUserAgents)
}

func TestNewLogStatistics_RanksByCountThenKey(t *testing.T) {
	t.Parallel()

	agg := EmptyAggregate()
	agg.EndpointCounts = map[string]int64{
		"/c": 5,
		"/a": 2,
		"/b": 2,
		"/d": 9,
	}

	stats := NewLogStatistics(agg, 10)

	expected := []RankedCount{
		{Key: "/d", Count: 9},
		{Key: "/c", Count: 5},
		{Key: "/a", Count: 2},
		{Key: "/b", Count: 2},
	}
	assert.Equal(t, expected, stats.TopEndpoints)
}

func TestNewLogStatistics_TruncatesToTopN(t *testing.T) {
	t.Parallel()

	agg := EmptyAggregate()
	agg.IPCounts = map[string]int64{
		"10.0.0.1": 4,
		"10.0.0.2": 3,
		"10.0.0.3": 2,
		"10.0.0.4": 1,
	}

	stats := NewLogStatistics(agg, 2)

	expected := []RankedCount{
		{Key: "10.0.0.1", Count: 4},
		{Key: "10.0.0.2", Count: 3},
	}
	assert.Equal(t, expected, stats.TopIPAddresses)
}

func TestNewLogStatistics_CopiesStatusCounts(t *testing.T) {
	t.Parallel()

	agg := AggregateFromRecords([]*AccessLogRecord{
		sizedRecord("10.0.0.1", "/index", 200, 500),
	})

	stats := NewLogStatistics(agg, 10)
	stats.StatusCounts[200] = 99

	assert.Equal(t, int64(1), agg.StatusCounts[200])
}
