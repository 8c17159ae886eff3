// Package transport adapts the membership registry, the peer client pool and
// the inbound dispatcher into the three operations the broadcast protocol
// needs: listing siblings, unicast send, and subscribing to inbound packets.
package transport

import (
	"context"

	"github.com/pkg/errors"

	"github.com/clustermesh/quorumcall/core/dto"
	"github.com/clustermesh/quorumcall/core/stream"
	"github.com/clustermesh/quorumcall/io/gateway/grpc/client"
)

// Membership enumerates and resolves workers of this logical service.
//
//go:generate mockgen -destination=../../mocks/mock_membership.go -package=mocks . Membership
type Membership interface {
	ListSiblings(ctx context.Context) ([]dto.Sibling, error)
	Lookup(ctx context.Context, processID string) (dto.Sibling, error)
}

// Transport wires membership lookup and the unicast primitive together.
type Transport struct {
	members Membership
	pool    *client.Pool
	inbox   *stream.Inbox
}

func New(members Membership, pool *client.Pool, inbox *stream.Inbox) *Transport {
	return &Transport{members: members, pool: pool, inbox: inbox}
}

// ListSiblings returns the current set of online workers of this service,
// fetched fresh from the registry on every call.
func (t *Transport) ListSiblings(ctx context.Context) ([]dto.Sibling, error) {
	return t.members.ListSiblings(ctx)
}

// Send delivers a packet to an already resolved sibling.
func (t *Transport) Send(ctx context.Context, target dto.Sibling, p *dto.Packet) error {
	return t.pool.Deliver(ctx, target.Addr, p)
}

// SendTo resolves a worker by process id and delivers a packet to it. Used
// on the reply path, where only the requester's process id is known.
func (t *Transport) SendTo(ctx context.Context, processID string, p *dto.Packet) error {
	sib, err := t.members.Lookup(ctx, processID)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", processID)
	}

	return t.pool.Deliver(ctx, sib.Addr, p)
}

// Subscribe registers a handler on the process-wide inbound stream.
func (t *Transport) Subscribe(fn func(*dto.Packet)) stream.Subscription {
	return t.inbox.Subscribe(fn)
}

// Unsubscribe releases a previously registered handler.
func (t *Transport) Unsubscribe(id stream.Subscription) {
	t.inbox.Unsubscribe(id)
}
