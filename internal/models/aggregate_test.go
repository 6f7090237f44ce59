package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedRecord(ip, endpoint string, status int, size int64) *AccessLogRecord {
	return &AccessLogRecord{
		IPAddress:   ip,
		ReceivedAt:  time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Method:      "GET",
		Endpoint:    endpoint,
		Protocol:    "HTTP/1.1",
		StatusCode:  status,
		ContentSize: size,
		SizeKnown:   true,
	}
}

func unsizedRecord(ip, endpoint string, status int) *AccessLogRecord {
	record := sizedRecord(ip, endpoint, status, 0)
	record.SizeKnown = false
	return record
}

func TestAggregateFromRecords_FoldsCountsSizesAndFrequencies(t *testing.T) {
	t.Parallel()

	records := []*AccessLogRecord{
		sizedRecord("10.0.0.1", "/index", 200, 500),
		sizedRecord("10.0.0.1", "/index", 200, 700),
		unsizedRecord("10.0.0.9", "/login", 404),
	}

	agg := AggregateFromRecords(records)

	assert.Equal(t, int64(3), agg.Count)
	assert.Equal(t, int64(2), agg.SizedCount)
	assert.Equal(t, int64(1200), agg.ContentSizeSum)
	assert.Equal(t, int64(500), agg.ContentSizeMin)
	assert.Equal(t, int64(700), agg.ContentSizeMax)
	assert.Equal(t, map[int]int64{200: 2, 404: 1}, agg.StatusCounts)
	assert.Equal(t, map[string]int64{"/index": 2, "/login": 1}, agg.EndpointCounts)
	assert.Equal(t, map[string]int64{"10.0.0.1": 2, "10.0.0.9": 1}, agg.IPCounts)
	assert.Empty(t, agg.UserAgentCounts)
}

func TestAggregateFromRecords_CountsUserAgentFamilies(t *testing.T) {
	t.Parallel()

	withUA := sizedRecord("10.0.0.1", "/index", 200, 100)
	withUA.UserAgentFamily = "Chrome"
	withoutUA := sizedRecord("10.0.0.2", "/index", 200, 100)

	agg := AggregateFromRecords([]*AccessLogRecord{withUA, withoutUA})

	assert.Equal(t, int64(2), agg.Count)
	assert.Equal(t, map[string]int64{"Chrome": 1}, agg.UserAgentCounts)
}

func TestMerge_EmptyIsIdentity(t *testing.T) {
	t.Parallel()

	agg := AggregateFromRecords([]*AccessLogRecord{
		sizedRecord("10.0.0.1", "/index", 200, 500),
		unsizedRecord("10.0.0.9", "/login", 404),
	})

	left := Merge(EmptyAggregate(), agg)
	right := Merge(agg, EmptyAggregate())

	assert.Equal(t, agg, left)
	assert.Equal(t, agg, right)
}

func TestMerge_SameResultForAnyGroupingAndOrder(t *testing.T) {
	t.Parallel()

	records := []*AccessLogRecord{
		sizedRecord("10.0.0.1", "/index", 200, 500),
		sizedRecord("10.0.0.1", "/index", 200, 700),
		unsizedRecord("10.0.0.9", "/login", 404),
		sizedRecord("10.0.0.3", "/api/users", 500, 42),
		unsizedRecord("10.0.0.3", "/api/users", 500),
	}

	all := AggregateFromRecords(records)

	// Fold one record per batch and merge left to right.
	oneByOne := EmptyAggregate()
	for _, record := range records {
		oneByOne = Merge(oneByOne, AggregateFromRecords([]*AccessLogRecord{record}))
	}

	// Split 2/3 and merge in reverse order.
	front := AggregateFromRecords(records[:2])
	back := AggregateFromRecords(records[2:])
	reversed := Merge(back, front)

	assert.Equal(t, all, oneByOne)
	assert.Equal(t, all, reversed)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := AggregateFromRecords([]*AccessLogRecord{sizedRecord("10.0.0.1", "/index", 200, 500)})
	b := AggregateFromRecords([]*AccessLogRecord{sizedRecord("10.0.0.2", "/index", 200, 700)})

	merged := Merge(a, b)
	merged.StatusCounts[200] = 99
	merged.EndpointCounts["/index"] = 99

	assert.Equal(t, int64(1), a.StatusCounts[200])
	assert.Equal(t, int64(1), b.StatusCounts[200])
	assert.Equal(t, int64(1), a.EndpointCounts["/index"])
}

func TestMerge_MinMaxIgnoresSideWithoutSizedRecords(t *testing.T) {
	t.Parallel()

	sized := AggregateFromRecords([]*AccessLogRecord{
		sizedRecord("10.0.0.1", "/index", 200, 500),
		sizedRecord("10.0.0.1", "/index", 200, 700),
	})
	unsized := AggregateFromRecords([]*AccessLogRecord{
		unsizedRecord("10.0.0.9", "/login", 404),
	})

	merged := Merge(sized, unsized)

	assert.Equal(t, int64(3), merged.Count)
	assert.Equal(t, int64(2), merged.SizedCount)
	assert.Equal(t, int64(500), merged.ContentSizeMin)
	assert.Equal(t, int64(700), merged.ContentSizeMax)

	// Same outcome with operands swapped.
	swapped := Merge(unsized, sized)
	assert.Equal(t, merged, swapped)
}

func TestMerge_MinMaxCombinePairwise(t *testing.T) {
	t.Parallel()

	a := AggregateFromRecords([]*AccessLogRecord{
		sizedRecord("10.0.0.1", "/index", 200, 500),
		sizedRecord("10.0.0.1", "/index", 200, 900),
	})
	b := AggregateFromRecords([]*AccessLogRecord{
		sizedRecord("10.0.0.2", "/login", 200, 100),
		sizedRecord("10.0.0.2", "/login", 200, 600),
	})

	merged := Merge(a, b)

	assert.Equal(t, int64(100), merged.ContentSizeMin)
	assert.Equal(t, int64(900), merged.ContentSizeMax)
	assert.Equal(t, int64(2100), merged.ContentSizeSum)
	assert.Equal(t, int64(4), merged.SizedCount)
}

func TestClone_IsDeepCopy(t *testing.T) {
	t.Parallel()

	agg := AggregateFromRecords([]*AccessLogRecord{sizedRecord("10.0.0.1", "/index", 200, 500)})

	clone := agg.Clone()
	clone.Count = 99
	clone.StatusCounts[200] = 99
	clone.IPCounts["10.0.0.1"] = 99

	assert.Equal(t, int64(1), agg.Count)
	assert.Equal(t, int64(1), agg.StatusCounts[200])
	assert.Equal(t, int64(1), agg.IPCounts["10.0.0.1"])
}

func TestAggregate_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	agg := AggregateFromRecords([]*AccessLogRecord{
		sizedRecord("10.0.0.1", "/index", 200, 500),
		unsizedRecord("10.0.0.9", "/login", 404),
	})

	data, err := json.Marshal(agg)
	require.NoError(t, err)

	var decoded Aggregate
	require.NoError(t, json.Unmarshal(data, &decoded))
	decoded.Normalize()

	assert.Equal(t, agg, &decoded)
}

func TestNormalize_AllocatesNilMaps(t *testing.T) {
	t.Parallel()

	agg := &Aggregate{Count: 1}
	agg.Normalize()

	assert.NotNil(t, agg.StatusCounts)
	assert.NotNil(t, agg.EndpointCounts)
	assert.NotNil(t, agg.IPCounts)
	assert.NotNil(t, agg.UserAgentCounts)
}
