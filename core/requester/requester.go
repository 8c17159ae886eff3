// Package requester implements the asking side of the broadcast protocol:
// fan-out send to every sibling, reply collection keyed by correlation id,
// quorum completion and timeout cancellation.
package requester

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/clustermesh/quorumcall/core/dto"
	"github.com/clustermesh/quorumcall/core/stream"
)

// DefaultTimeout bounds a broadcast round when the caller passes no deadline.
const DefaultTimeout = 10 * time.Second

// ErrTimeout is returned when fewer than the expected number of replies
// arrived within the round deadline. Partial results are discarded.
var ErrTimeout = errors.New("broadcast round timed out")

// Transport provides sibling enumeration, the unicast send primitive and the
// inbound packet stream.
//
//go:generate mockgen -destination=../../mocks/mock_transport.go -package=mocks . Transport
type Transport interface {
	ListSiblings(ctx context.Context) ([]dto.Sibling, error)
	Send(ctx context.Context, target dto.Sibling, p *dto.Packet) error
	Subscribe(fn func(*dto.Packet)) stream.Subscription
	Unsubscribe(id stream.Subscription)
}

// Requester issues broadcast rounds on behalf of this worker.
type Requester struct {
	transport  Transport
	selfID     string
	instanceID string
	seq        uint64
}

func New(transport Transport, selfID, instanceID string) *Requester {
	return &Requester{
		transport:  transport,
		selfID:     selfID,
		instanceID: instanceID,
	}
}

// Broadcast sends one request packet per online sibling and returns the
// number of siblings addressed. Per-target send failures are logged and
// swallowed: an undelivered request manifests as an absent reply, never as
// an error. Only a membership lookup failure is surfaced.
func (r *Requester) Broadcast(ctx context.Context, topic string, payload []byte) (int, error) {
	return r.broadcast(ctx, r.nextCorrelationID(), topic, payload)
}

func (r *Requester) broadcast(ctx context.Context, correlationID, topic string, payload []byte) (int, error) {
	siblings, err := r.transport.ListSiblings(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list siblings")
	}

	for _, sib := range siblings {
		p := &dto.Packet{
			CorrelationID: correlationID,
			Topic:         topic,
			SenderID:      r.selfID,
			Payload:       payload,
			ReplyTo:       r.selfID,
			OriginID:      r.selfID,
			InstanceID:    r.instanceID,
		}
		if err := r.transport.Send(ctx, sib, p); err != nil {
			// fire-and-forget: the round still waits out its full deadline
			log.Warnf("failed to send %s to %s: %v", topic, sib.ProcessID, err)
		}
	}

	return len(siblings), nil
}

// BroadcastAndCollect broadcasts the topic to every online sibling and waits
// until all of them replied or the timeout fired. Replies are matched by
// (topic, correlation id) so concurrent rounds on the same topic never
// cross-consume each other. The returned payloads are sorted by the
// replying worker's instance id, independent of arrival order.
func (r *Requester) BroadcastAndCollect(ctx context.Context, topic string, payload []byte, timeout time.Duration) ([][]byte, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	correlationID := r.nextCorrelationID()

	// subscribe before sending so a reply racing the fan-out is not lost
	rnd := newRound(correlationID, topic)
	sub := r.transport.Subscribe(rnd.accept)
	defer r.transport.Unsubscribe(sub)

	expected, err := r.broadcast(ctx, correlationID, topic, payload)
	if err != nil {
		return nil, err
	}
	log.Infof("broadcast %s (correlation %s) addressed %d siblings", topic, correlationID, expected)

	// zero online siblings: resolve immediately instead of idling until
	// the deadline for replies that can never come
	rnd.setExpected(expected)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case replies := <-rnd.done:
		return payloads(replies), nil
	case <-timer.C:
		return nil, errors.Wrapf(ErrTimeout, "topic %s, correlation %s", topic, correlationID)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// nextCorrelationID returns an id unique across all in-flight rounds of this
// process: a per-requester sequence plus a random component.
func (r *Requester) nextCorrelationID() string {
	return fmt.Sprintf("%s-%d-%s", r.selfID, atomic.AddUint64(&r.seq, 1), uuid.NewString())
}

// round owns the state of one broadcast: the expected reply count and the
// replies collected so far. It is created per call and never shared between
// rounds, so two concurrent rounds on the same topic stay isolated.
type round struct {
	correlationID string
	topic         string

	mu        sync.Mutex
	expected  int // -1 until the fan-out finished
	seen      map[string]struct{}
	collected []*dto.Packet
	complete  bool
	done      chan []*dto.Packet
}

func newRound(correlationID, topic string) *round {
	return &round{
		correlationID: correlationID,
		topic:         topic,
		expected:      -1,
		seen:          make(map[string]struct{}),
		done:          make(chan []*dto.Packet, 1),
	}
}

// accept is the per-round inbound handler. Packets that are not replies to
// this exact round are ignored; late replies after completion are dropped.
// Each sibling contributes at most one reply: a retransmitted or duplicated
// reply counts once, so the round never collects more than it addressed.
func (rd *round) accept(p *dto.Packet) {
	if !p.IsReply || p.Topic != rd.topic || p.CorrelationID != rd.correlationID {
		return
	}

	rd.mu.Lock()
	defer rd.mu.Unlock()

	if rd.complete {
		return
	}
	if _, dup := rd.seen[p.SenderID]; dup {
		return
	}
	rd.seen[p.SenderID] = struct{}{}
	rd.collected = append(rd.collected, p)
	rd.tryComplete()
}

// setExpected records how many siblings were addressed. Completion may fire
// right here, either because the expected count is zero or because every
// reply already raced in during the fan-out.
func (rd *round) setExpected(n int) {
	rd.mu.Lock()
	defer rd.mu.Unlock()

	rd.expected = n
	rd.tryComplete()
}

// tryComplete resolves the round exactly once, with the collected replies
// sorted by instance id. Callers must hold rd.mu.
func (rd *round) tryComplete() {
	if rd.complete || rd.expected < 0 || len(rd.collected) < rd.expected {
		return
	}

	rd.complete = true
	sort.Slice(rd.collected, func(i, j int) bool {
		return rd.collected[i].InstanceID < rd.collected[j].InstanceID
	})
	rd.done <- rd.collected
}

func payloads(replies []*dto.Packet) [][]byte {
	out := make([][]byte, 0, len(replies))
	for _, p := range replies {
		out = append(out, p.Payload)
	}

	return out
}
