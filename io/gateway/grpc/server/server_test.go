package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/clustermesh/quorumcall/config"
	"github.com/clustermesh/quorumcall/core/dto"
	"github.com/clustermesh/quorumcall/core/stream"
	"github.com/clustermesh/quorumcall/io/gateway/grpc/proto"
	"github.com/clustermesh/quorumcall/metrics"
)

type stubAggregator struct {
	clustered bool
	agg       dto.AggregateSnapshot
	err       error
	timeout   time.Duration
}

func (s *stubAggregator) GetAggregate(ctx context.Context, timeout time.Duration) (dto.AggregateSnapshot, error) {
	s.timeout = timeout
	return s.agg, s.err
}

func (s *stubAggregator) Clustered() bool { return s.clustered }

func TestNewRequiresCollaborators(t *testing.T) {
	conf := &config.Config{Nodeaddr: "localhost:3000"}

	_, err := New(conf, nil, &stubAggregator{}, nil)
	require.Error(t, err)

	_, err = New(conf, stream.NewInbox(), nil, nil)
	require.Error(t, err)
}

func TestDeliverDispatchesToInbox(t *testing.T) {
	inbox := stream.NewInbox()
	reg := metrics.NewRegistry("worker-1")

	s, err := New(&config.Config{Nodeaddr: "localhost:3000"}, inbox, &stubAggregator{}, reg)
	require.NoError(t, err)

	got := make(chan *dto.Packet, 1)
	sub := inbox.Subscribe(func(p *dto.Packet) { got <- p })
	defer inbox.Unsubscribe(sub)

	ack, err := s.Deliver(context.Background(), &proto.Packet{
		CorrelationId: "corr-1",
		Topic:         "metrics-get",
		SenderId:      "worker-2",
		IsReply:       true,
		ReplyTo:       "worker-1",
		InstanceId:    "i2",
		Payload:       []byte("ping"),
	})
	require.NoError(t, err)
	require.True(t, ack.Ok)

	select {
	case p := <-got:
		require.Equal(t, "corr-1", p.CorrelationID)
		require.Equal(t, "worker-2", p.SenderID)
		require.True(t, p.IsReply)
		require.Equal(t, []byte("ping"), p.Payload)
	case <-time.After(time.Second):
		t.Fatal("packet was not dispatched")
	}

	snap, err := reg.Snapshot()
	require.NoError(t, err)
	require.Equal(t, float64(1), snap.Counters["relay_packets_in_total"])
}

func TestAggregateEncodesResult(t *testing.T) {
	want := dto.AggregateSnapshot{
		Instances: []string{"worker-1", "worker-2"},
		Counters:  map[string]float64{"reqs": 3},
	}
	agg := &stubAggregator{clustered: true, agg: want}

	s, err := New(&config.Config{Nodeaddr: "localhost:3000", Timeout: 500}, stream.NewInbox(), agg, nil)
	require.NoError(t, err)

	reply, err := s.Aggregate(context.Background(), &proto.AggregateRequest{TimeoutMs: 250})
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, agg.timeout)

	var got dto.AggregateSnapshot
	require.NoError(t, msgpack.Unmarshal(reply.Payload, &got))
	require.Equal(t, want.Instances, got.Instances)
	require.Equal(t, want.Counters, got.Counters)
}

func TestAggregateFallsBackToConfiguredTimeout(t *testing.T) {
	agg := &stubAggregator{}

	s, err := New(&config.Config{Nodeaddr: "localhost:3000", Timeout: 500}, stream.NewInbox(), agg, nil)
	require.NoError(t, err)

	_, err = s.Aggregate(context.Background(), &proto.AggregateRequest{})
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, agg.timeout)
}

func TestWhiteListCheckerFiltersByHost(t *testing.T) {
	s, err := New(&config.Config{Nodeaddr: "localhost:3000", Whitelist: []string{"127.0.0.1"}},
		stream.NewInbox(), &stubAggregator{}, nil)
	require.NoError(t, err)

	info := &grpc.UnaryServerInfo{Server: s}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "handled", nil
	}
	peerCtx := func(host string) context.Context {
		return peer.NewContext(context.Background(), &peer.Peer{
			Addr: &net.TCPAddr{IP: net.ParseIP(host), Port: 40000},
		})
	}

	got, err := WhiteListChecker(peerCtx("127.0.0.1"), nil, info, handler)
	require.NoError(t, err)
	require.Equal(t, "handled", got)

	_, err = WhiteListChecker(peerCtx("10.0.0.9"), nil, info, handler)
	require.Error(t, err)
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	// no peer info at all is refused as well
	_, err = WhiteListChecker(context.Background(), nil, info, handler)
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
}

func TestAggregatePropagatesFailure(t *testing.T) {
	agg := &stubAggregator{err: errors.New("collect failed")}

	s, err := New(&config.Config{Nodeaddr: "localhost:3000", Timeout: 500}, stream.NewInbox(), agg, nil)
	require.NoError(t, err)

	_, err = s.Aggregate(context.Background(), &proto.AggregateRequest{TimeoutMs: 100})
	require.Error(t, err)
}
