// Package responder implements the answering side of the broadcast protocol:
// it watches the inbound stream for request packets, dispatches them to the
// handler registered for the topic, and sends the answer back to the
// originating worker.
package responder

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/clustermesh/quorumcall/core/dto"
)

// defaultAnswerBudget bounds the local computation plus the reply send when
// no budget is configured. A handler slower than its budget produces no
// reply at all and the requester times out on its own deadline.
const defaultAnswerBudget = 5 * time.Second

// Sender delivers a reply packet to the worker identified by process id.
//
//go:generate mockgen -destination=../../mocks/mock_sender.go -package=mocks . Sender
type Sender interface {
	SendTo(ctx context.Context, processID string, p *dto.Packet) error
}

// Handler computes the local answer for one topic. It may block; a failure
// means no reply is sent for this request.
type Handler func(ctx context.Context, payload []byte) ([]byte, error)

// Responder answers broadcast requests for the topics it knows.
type Responder struct {
	sender       Sender
	selfID       string
	instanceID   string
	answerBudget time.Duration

	mu       sync.RWMutex
	handlers map[string]Handler
}

// New creates a responder. answerBudget bounds each handler run plus the
// reply send; pass the broadcast round deadline so a slow handler still gets
// the whole round to answer. Zero falls back to a conservative default.
func New(sender Sender, selfID, instanceID string, answerBudget time.Duration) *Responder {
	if answerBudget <= 0 {
		answerBudget = defaultAnswerBudget
	}

	return &Responder{
		sender:       sender,
		selfID:       selfID,
		instanceID:   instanceID,
		answerBudget: answerBudget,
		handlers:     make(map[string]Handler),
	}
}

// Handle registers the handler for a topic. Registering a topic twice
// replaces the previous handler.
func (r *Responder) Handle(topic string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[topic] = h
}

// OnPacket is the responder's process-lifetime subscription on the inbound
// stream. Replies and requests for unknown topics are ignored; everything
// else is answered asynchronously.
func (r *Responder) OnPacket(p *dto.Packet) {
	if p.IsReply {
		return
	}

	r.mu.RLock()
	h, ok := r.handlers[p.Topic]
	r.mu.RUnlock()
	if !ok {
		return
	}

	go r.answer(p, h)
}

// answer computes the local answer and sends it back to the requester. A
// failing handler is contained here: the requester simply never receives
// this worker's reply.
func (r *Responder) answer(req *dto.Packet, h Handler) {
	ctx, cancel := context.WithTimeout(context.Background(), r.answerBudget)
	defer cancel()

	payload, err := h(ctx, req.Payload)
	if err != nil {
		log.Errorf("handler for topic %s failed: %v", req.Topic, err)
		return
	}

	reply := &dto.Packet{
		CorrelationID: req.CorrelationID,
		Topic:         req.Topic,
		SenderID:      r.selfID,
		Payload:       payload,
		IsReply:       true,
		ReplyTo:       req.ReplyTo,
		OriginID:      r.selfID,
		InstanceID:    r.instanceID,
	}
	if err := r.sender.SendTo(ctx, req.ReplyTo, reply); err != nil {
		log.Warnf("failed to send %s reply to %s: %v", req.Topic, req.ReplyTo, err)
	}
}
