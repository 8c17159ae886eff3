package aggregator

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/mock/gomock"

	"github.com/clustermesh/quorumcall/core/dto"
	"github.com/clustermesh/quorumcall/core/requester"
	"github.com/clustermesh/quorumcall/mocks"
)

func encode(t *testing.T, snap dto.MetricsSnapshot) []byte {
	raw, err := msgpack.Marshal(snap)
	require.NoError(t, err)
	return raw
}

func TestStandaloneAnswersLocallyWithoutTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// broadcaster has no expectations: touching the transport fails the test
	broadcaster := mocks.NewMockBroadcaster(ctrl)
	collector := mocks.NewMockCollector(ctrl)

	local := dto.MetricsSnapshot{InstanceID: "solo", Counters: map[string]float64{"reqs": 7}}
	merged := dto.AggregateSnapshot{Instances: []string{"solo"}, Counters: map[string]float64{"reqs": 7}}
	collector.EXPECT().Snapshot().Return(local, nil)
	collector.EXPECT().Merge([]dto.MetricsSnapshot{local}).Return(merged)

	a := New(broadcaster, collector, nil, false)
	require.False(t, a.Clustered())

	got, err := a.GetAggregate(context.Background(), time.Second)
	require.NoError(t, err)
	require.Equal(t, merged, got)
}

func TestStandaloneSurfacesSnapshotFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcaster := mocks.NewMockBroadcaster(ctrl)
	collector := mocks.NewMockCollector(ctrl)
	collector.EXPECT().Snapshot().Return(dto.MetricsSnapshot{}, errors.New("boom"))

	a := New(broadcaster, collector, nil, false)

	_, err := a.GetAggregate(context.Background(), time.Second)
	require.Error(t, err)
	require.Contains(t, err.Error(), "collect local snapshot")
}

func TestClusteredMergesCollectedSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapA := dto.MetricsSnapshot{InstanceID: "a", Counters: map[string]float64{"reqs": 1}}
	snapB := dto.MetricsSnapshot{InstanceID: "b", Counters: map[string]float64{"reqs": 2}}
	merged := dto.AggregateSnapshot{Instances: []string{"a", "b"}, Counters: map[string]float64{"reqs": 3}}

	broadcaster := mocks.NewMockBroadcaster(ctrl)
	broadcaster.EXPECT().
		BroadcastAndCollect(gomock.Any(), dto.TopicMetricsGet, nil, 2*time.Second).
		Return([][]byte{encode(t, snapA), encode(t, snapB)}, nil)

	collector := mocks.NewMockCollector(ctrl)
	collector.EXPECT().Merge([]dto.MetricsSnapshot{snapA, snapB}).Return(merged)

	archive := mocks.NewMockArchive(ctrl)
	archive.EXPECT().Record(merged).Return(nil)

	a := New(broadcaster, collector, archive, true)
	require.True(t, a.Clustered())

	got, err := a.GetAggregate(context.Background(), 2*time.Second)
	require.NoError(t, err)
	require.Equal(t, merged, got)
}

func TestClusteredPropagatesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcaster := mocks.NewMockBroadcaster(ctrl)
	broadcaster.EXPECT().
		BroadcastAndCollect(gomock.Any(), dto.TopicMetricsGet, nil, time.Second).
		Return(nil, errors.Wrap(requester.ErrTimeout, "topic metrics-get"))

	collector := mocks.NewMockCollector(ctrl)

	a := New(broadcaster, collector, nil, true)

	_, err := a.GetAggregate(context.Background(), time.Second)
	require.Error(t, err)
	require.True(t, errors.Is(err, requester.ErrTimeout))
}

func TestClusteredRejectsMalformedSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcaster := mocks.NewMockBroadcaster(ctrl)
	broadcaster.EXPECT().
		BroadcastAndCollect(gomock.Any(), dto.TopicMetricsGet, nil, time.Second).
		Return([][]byte{[]byte("\xc1garbage")}, nil)

	collector := mocks.NewMockCollector(ctrl)

	a := New(broadcaster, collector, nil, true)

	_, err := a.GetAggregate(context.Background(), time.Second)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode sibling snapshot")
}

func TestArchiveFailureDoesNotFailAggregation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snap := dto.MetricsSnapshot{InstanceID: "a"}
	merged := dto.AggregateSnapshot{Instances: []string{"a"}}

	broadcaster := mocks.NewMockBroadcaster(ctrl)
	broadcaster.EXPECT().
		BroadcastAndCollect(gomock.Any(), dto.TopicMetricsGet, nil, time.Second).
		Return([][]byte{encode(t, snap)}, nil)

	collector := mocks.NewMockCollector(ctrl)
	collector.EXPECT().Merge([]dto.MetricsSnapshot{snap}).Return(merged)

	archive := mocks.NewMockArchive(ctrl)
	archive.EXPECT().Record(merged).Return(errors.New("disk full"))

	a := New(broadcaster, collector, archive, true)

	got, err := a.GetAggregate(context.Background(), time.Second)
	require.NoError(t, err)
	require.Equal(t, merged, got)
}
