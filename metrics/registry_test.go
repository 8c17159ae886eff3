package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/clustermesh/quorumcall/core/dto"
)

func TestCountersAccumulateAndGaugesOverwrite(t *testing.T) {
	r := NewRegistry("worker-1")

	r.IncCounter("reqs", 1)
	r.IncCounter("reqs", 2)
	r.SetGauge("queue_depth", 9)
	r.SetGauge("queue_depth", 4)

	snap, err := r.Snapshot()
	require.NoError(t, err)
	require.Equal(t, "worker-1", snap.InstanceID)
	require.Equal(t, float64(3), snap.Counters["reqs"])
	require.Equal(t, float64(4), snap.Gauges["queue_depth"])
	require.False(t, snap.CollectedAt.IsZero())
}

func TestSnapshotIsDetachedFromRegistry(t *testing.T) {
	r := NewRegistry("worker-1")
	r.IncCounter("reqs", 1)

	snap, err := r.Snapshot()
	require.NoError(t, err)

	snap.Counters["reqs"] = 100
	r.IncCounter("reqs", 1)

	fresh, err := r.Snapshot()
	require.NoError(t, err)
	require.Equal(t, float64(2), fresh.Counters["reqs"])
}

func TestMergeSumsValuesAndSortsInstances(t *testing.T) {
	r := NewRegistry("worker-1")

	newer := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Minute)

	agg := r.Merge([]dto.MetricsSnapshot{
		{
			InstanceID:  "worker-2",
			CollectedAt: newer,
			Counters:    map[string]float64{"reqs": 5},
			Gauges:      map[string]float64{"queue_depth": 1},
		},
		{
			InstanceID:  "worker-1",
			CollectedAt: older,
			Counters:    map[string]float64{"reqs": 3, "errs": 1},
			Gauges:      map[string]float64{"queue_depth": 2},
		},
	})

	require.Equal(t, []string{"worker-1", "worker-2"}, agg.Instances)
	require.Equal(t, float64(8), agg.Counters["reqs"])
	require.Equal(t, float64(1), agg.Counters["errs"])
	require.Equal(t, float64(3), agg.Gauges["queue_depth"])
	require.Equal(t, newer, agg.CollectedAt)
}

func TestMergeOfNothingIsEmpty(t *testing.T) {
	r := NewRegistry("worker-1")

	agg := r.Merge(nil)
	require.Empty(t, agg.Instances)
	require.Empty(t, agg.Counters)
	require.Empty(t, agg.Gauges)
}

func TestHandlerEncodesCurrentSnapshot(t *testing.T) {
	r := NewRegistry("worker-1")
	r.IncCounter("reqs", 7)

	raw, err := r.Handler()(context.Background(), nil)
	require.NoError(t, err)

	var snap dto.MetricsSnapshot
	require.NoError(t, msgpack.Unmarshal(raw, &snap))
	require.Equal(t, "worker-1", snap.InstanceID)
	require.Equal(t, float64(7), snap.Counters["reqs"])
}
