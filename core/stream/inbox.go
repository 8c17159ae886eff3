// Package stream provides the process-wide inbound packet dispatcher.
//
// Every packet delivered to this worker is fanned out to all currently
// registered subscribers: the responder holds one process-lifetime
// subscription, and every in-flight broadcast round holds one short-lived
// subscription that it must release on completion.
package stream

import (
	"sync"

	"github.com/clustermesh/quorumcall/core/dto"
)

// Subscription identifies one registered inbound handler.
type Subscription uint64

// Inbox dispatches inbound packets to registered subscribers.
type Inbox struct {
	mu   sync.RWMutex
	next uint64
	subs map[Subscription]func(*dto.Packet)
}

func NewInbox() *Inbox {
	return &Inbox{subs: make(map[Subscription]func(*dto.Packet))}
}

// Subscribe registers fn for every subsequently dispatched packet and
// returns a handle for Unsubscribe. Subscribers filter packets themselves.
func (in *Inbox) Subscribe(fn func(*dto.Packet)) Subscription {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.next++
	id := Subscription(in.next)
	in.subs[id] = fn

	return id
}

// Unsubscribe removes a previously registered handler. Unknown handles are
// ignored, so releasing on every exit path is safe.
func (in *Inbox) Unsubscribe(id Subscription) {
	in.mu.Lock()
	defer in.mu.Unlock()

	delete(in.subs, id)
}

// Dispatch delivers the packet to every subscriber registered at the moment
// of the call. Handlers run synchronously in arrival order; a handler may
// unsubscribe itself or others during dispatch.
func (in *Inbox) Dispatch(p *dto.Packet) {
	in.mu.RLock()
	handlers := make([]func(*dto.Packet), 0, len(in.subs))
	for _, fn := range in.subs {
		handlers = append(handlers, fn)
	}
	in.mu.RUnlock()

	for _, fn := range handlers {
		fn(p)
	}
}

// Size returns the number of registered subscribers.
func (in *Inbox) Size() int {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return len(in.subs)
}
