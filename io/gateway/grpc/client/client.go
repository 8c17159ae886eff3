// Package client maintains gRPC connections to sibling workers and provides
// the best-effort unicast send the broadcast protocol is built on.
package client

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/clustermesh/quorumcall/core/dto"
	"github.com/clustermesh/quorumcall/io/gateway/grpc/proto"
)

// Pool caches one client connection per sibling address. Connections are
// created lazily on first send and reused for the process lifetime.
type Pool struct {
	mu    sync.Mutex
	peers map[string]proto.RelayClient
	conns []*grpc.ClientConn
}

func NewPool() *Pool {
	return &Pool{peers: make(map[string]proto.RelayClient)}
}

// Deliver sends one packet to the worker listening on addr. The caller
// decides whether a failure matters; the broadcast path discards it.
func (p *Pool) Deliver(ctx context.Context, addr string, packet *dto.Packet) error {
	cl, err := p.peer(addr)
	if err != nil {
		return err
	}

	_, err = cl.Deliver(ctx, packetToProto(packet))

	return err
}

func (p *Pool) peer(addr string) (proto.RelayClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cl, ok := p.peers[addr]; ok {
		return cl, nil
	}

	connParams := grpc.ConnectParams{
		Backoff: backoff.Config{
			BaseDelay: 100 * time.Millisecond,
			MaxDelay:  10 * time.Second,
		},
		MinConnectTimeout: 200 * time.Millisecond,
	}
	conn, err := grpc.NewClient(addr,
		grpc.WithConnectParams(connParams),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", addr)
	}

	cl := proto.NewRelayClient(conn)
	p.peers[addr] = cl
	p.conns = append(p.conns, conn)

	return cl, nil
}

// Close tears down every cached connection.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, conn := range p.conns {
		_ = conn.Close()
	}
	p.peers = make(map[string]proto.RelayClient)
	p.conns = nil
}

func packetToProto(packet *dto.Packet) *proto.Packet {
	return &proto.Packet{
		CorrelationId: packet.CorrelationID,
		Topic:         packet.Topic,
		SenderId:      packet.SenderID,
		Payload:       packet.Payload,
		IsReply:       packet.IsReply,
		ReplyTo:       packet.ReplyTo,
		OriginId:      packet.OriginID,
		InstanceId:    packet.InstanceID,
	}
}
