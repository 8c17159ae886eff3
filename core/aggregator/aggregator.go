// Package aggregator is the composition point of the broadcast protocol: it
// decides once at construction whether this process participates in a
// cluster, and serves the single externally consumed operation GetAggregate.
package aggregator

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/clustermesh/quorumcall/core/dto"
)

// Broadcaster runs one broadcast round and returns the collected payloads.
//
//go:generate mockgen -destination=../../mocks/mock_broadcaster.go -package=mocks . Broadcaster
type Broadcaster interface {
	BroadcastAndCollect(ctx context.Context, topic string, payload []byte, timeout time.Duration) ([][]byte, error)
}

// Collector is the metrics collaborator: a local serializable snapshot and
// the pure merge of many snapshots into one.
//
//go:generate mockgen -destination=../../mocks/mock_collector.go -package=mocks . Collector
type Collector interface {
	Snapshot() (dto.MetricsSnapshot, error)
	Merge(snapshots []dto.MetricsSnapshot) dto.AggregateSnapshot
}

// Archive persists completed aggregation rounds. Archiving is best-effort
// and never fails an aggregation.
//
//go:generate mockgen -destination=../../mocks/mock_archive.go -package=mocks . Archive
type Archive interface {
	Record(agg dto.AggregateSnapshot) error
}

// Aggregator answers GetAggregate either locally (standalone mode) or by
// collecting a snapshot from every sibling worker (clustered mode).
type Aggregator struct {
	broadcaster Broadcaster
	collector   Collector
	archive     Archive
	clustered   bool
}

// New creates the aggregator. The clustered flag is fixed for the process
// lifetime. archive may be nil to disable round persistence.
func New(broadcaster Broadcaster, collector Collector, archive Archive, clustered bool) *Aggregator {
	return &Aggregator{
		broadcaster: broadcaster,
		collector:   collector,
		archive:     archive,
		clustered:   clustered,
	}
}

// Clustered reports whether this process participates in a multi-worker
// cluster. Fixed at process start.
func (a *Aggregator) Clustered() bool {
	return a.clustered
}

// GetAggregate returns the merged metrics view. In standalone mode the local
// snapshot is answered directly with no transport I/O; in clustered mode a
// metrics-get broadcast round collects a snapshot from every sibling,
// including this worker's own responder.
func (a *Aggregator) GetAggregate(ctx context.Context, timeout time.Duration) (dto.AggregateSnapshot, error) {
	if !a.clustered {
		snap, err := a.collector.Snapshot()
		if err != nil {
			return dto.AggregateSnapshot{}, errors.Wrap(err, "collect local snapshot")
		}

		return a.collector.Merge([]dto.MetricsSnapshot{snap}), nil
	}

	payloads, err := a.broadcaster.BroadcastAndCollect(ctx, dto.TopicMetricsGet, nil, timeout)
	if err != nil {
		return dto.AggregateSnapshot{}, err
	}

	snapshots := make([]dto.MetricsSnapshot, 0, len(payloads))
	for _, raw := range payloads {
		var snap dto.MetricsSnapshot
		if err := msgpack.Unmarshal(raw, &snap); err != nil {
			return dto.AggregateSnapshot{}, errors.Wrap(err, "decode sibling snapshot")
		}
		snapshots = append(snapshots, snap)
	}

	agg := a.collector.Merge(snapshots)

	if a.archive != nil {
		if err := a.archive.Record(agg); err != nil {
			log.Warnf("failed to archive aggregate: %v", err)
		}
	}

	return agg, nil
}
