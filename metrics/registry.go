// Package metrics provides the per-worker metrics registry exchanged over
// the metrics-get topic: local snapshot collection, the msgpack codec for
// the wire payload, and the pure merge of per-worker snapshots into one
// aggregate view.
package metrics

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/clustermesh/quorumcall/core/dto"
)

// Registry holds this worker's counters and gauges.
type Registry struct {
	instanceID string

	mu       sync.RWMutex
	counters map[string]float64
	gauges   map[string]float64
}

func NewRegistry(instanceID string) *Registry {
	return &Registry{
		instanceID: instanceID,
		counters:   make(map[string]float64),
		gauges:     make(map[string]float64),
	}
}

// IncCounter adds delta to the named counter.
func (r *Registry) IncCounter(name string, delta float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counters[name] += delta
}

// SetGauge sets the named gauge to the given value.
func (r *Registry) SetGauge(name string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gauges[name] = value
}

// Snapshot returns a serializable copy of the current registry state.
func (r *Registry) Snapshot() (dto.MetricsSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return dto.MetricsSnapshot{
		InstanceID:  r.instanceID,
		CollectedAt: time.Now().UTC(),
		Counters:    copyValues(r.counters),
		Gauges:      copyValues(r.gauges),
	}, nil
}

// Merge combines per-worker snapshots into one aggregate: counters and
// gauges are summed across workers, the instance list is sorted, and the
// aggregate timestamp is the newest snapshot's. Merge is pure.
func (r *Registry) Merge(snapshots []dto.MetricsSnapshot) dto.AggregateSnapshot {
	agg := dto.AggregateSnapshot{
		Instances: make([]string, 0, len(snapshots)),
		Counters:  make(map[string]float64),
		Gauges:    make(map[string]float64),
	}

	for _, snap := range snapshots {
		agg.Instances = append(agg.Instances, snap.InstanceID)
		if snap.CollectedAt.After(agg.CollectedAt) {
			agg.CollectedAt = snap.CollectedAt
		}
		for name, v := range snap.Counters {
			agg.Counters[name] += v
		}
		for name, v := range snap.Gauges {
			agg.Gauges[name] += v
		}
	}
	sort.Strings(agg.Instances)

	return agg
}

// Handler answers the metrics-get topic with this worker's encoded snapshot.
func (r *Registry) Handler() func(ctx context.Context, payload []byte) ([]byte, error) {
	return func(ctx context.Context, payload []byte) ([]byte, error) {
		snap, err := r.Snapshot()
		if err != nil {
			return nil, errors.Wrap(err, "collect local snapshot")
		}

		return msgpack.Marshal(snap)
	}
}

func copyValues(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
