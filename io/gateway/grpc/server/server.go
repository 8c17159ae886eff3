package server

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/grpc"

	"github.com/clustermesh/quorumcall/config"
	"github.com/clustermesh/quorumcall/core/dto"
	"github.com/clustermesh/quorumcall/core/stream"
	"github.com/clustermesh/quorumcall/io/gateway/grpc/proto"
	"github.com/clustermesh/quorumcall/metrics"
)

// Aggregator is the externally consumed entry point served by the Aggregate
// RPC.
type Aggregator interface {
	GetAggregate(ctx context.Context, timeout time.Duration) (dto.AggregateSnapshot, error)
	Clustered() bool
}

// Server terminates the inter-worker transport: inbound packets are fanned
// out to the process-wide inbox, and the client-facing Aggregate RPC is
// answered by the aggregator.
type Server struct {
	proto.UnimplementedRelayServer
	Addr       string
	GRPCServer *grpc.Server
	Config     *config.Config
	inbox      *stream.Inbox
	aggregator Aggregator
	registry   *metrics.Registry
}

// New fabric func for Server
func New(conf *config.Config, inbox *stream.Inbox, aggregator Aggregator, registry *metrics.Registry) (*Server, error) {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:     true, // Seems like automatic color detection doesn't work on windows terminals
		FullTimestamp:   true,
		TimestampFormat: time.RFC822,
	})

	if inbox == nil {
		return nil, errors.New("inbox is not set")
	}
	if aggregator == nil {
		return nil, errors.New("aggregator is not set")
	}

	if aggregator.Clustered() {
		log.Info("clustered mode enabled")
	} else {
		log.Info("standalone mode enabled")
	}

	return &Server{
		Addr:       conf.Nodeaddr,
		Config:     conf,
		inbox:      inbox,
		aggregator: aggregator,
		registry:   registry,
	}, nil
}

// Deliver accepts a packet from a sibling worker and hands it to the inbox.
// Delivery itself never fails: a packet nobody is interested in is dropped
// by the subscribers' own filters.
func (s *Server) Deliver(ctx context.Context, packet *proto.Packet) (*proto.Ack, error) {
	if s.registry != nil {
		s.registry.IncCounter("relay_packets_in_total", 1)
	}
	s.inbox.Dispatch(packetPbToDto(packet))

	return &proto.Ack{Ok: true}, nil
}

// Aggregate collects a merged metrics snapshot from every sibling worker and
// returns it msgpack-encoded.
func (s *Server) Aggregate(ctx context.Context, req *proto.AggregateRequest) (*proto.AggregateReply, error) {
	timeout := time.Duration(req.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = time.Duration(s.Config.Timeout) * time.Millisecond
	}

	agg, err := s.aggregator.GetAggregate(ctx, timeout)
	if err != nil {
		return nil, err
	}

	payload, err := msgpack.Marshal(agg)
	if err != nil {
		return nil, errors.Wrap(err, "encode aggregate")
	}

	return &proto.AggregateReply{Payload: payload}, nil
}

// Run starts non-blocking GRPC server
func (s *Server) Run(opts ...grpc.UnaryServerInterceptor) {
	s.GRPCServer = grpc.NewServer(grpc.ChainUnaryInterceptor(opts...))
	proto.RegisterRelayServer(s.GRPCServer, s)

	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	log.Infof("listening on tcp://%s", s.Addr)

	go s.GRPCServer.Serve(l)
}

// Stop stops server
func (s *Server) Stop() {
	log.Info("stopping server")
	s.GRPCServer.GracefulStop()
	log.Info("server stopped")
}
