// Package dto provides data transfer objects exchanged between sibling
// workers of one logical service instance.
//
// A Packet is the single unit that travels over the inter-worker transport;
// the remaining types describe cluster membership and the metrics payloads
// carried for the "metrics-get" topic.
package dto

import "time"

// TopicMetricsGet is the broadcast topic used to collect a metrics snapshot
// from every sibling worker.
const TopicMetricsGet = "metrics-get"

// StatusOnline marks a worker that is registered and able to answer
// broadcast requests.
const StatusOnline = "online"

// Packet is the unit exchanged over the transport. The same shape is used
// for the initial broadcast (IsReply=false, empty payload) and for replies
// (IsReply=true, payload set to the answer).
type Packet struct {
	// CorrelationID uniquely identifies one broadcast round; replies carry
	// the id of the request that caused them.
	CorrelationID string
	// Topic identifies the question type.
	Topic string
	// SenderID is the process id of the worker that produced this packet.
	SenderID string
	// Payload is topic-specific data, encoded by the collaborator that owns
	// the topic. Empty for requests.
	Payload []byte
	// IsReply is false for the initial broadcast, true for a response.
	IsReply bool
	// ReplyTo is the process id that should receive the reply (the original
	// requester).
	ReplyTo string
	// OriginID is the process id that initiated the broadcast round. Replies
	// go straight back to ReplyTo, so this is single-hop metadata only.
	OriginID string
	// InstanceID is the stable identity of the sending worker, used for
	// deterministic ordering of collected replies.
	InstanceID string
}

// Sibling describes one worker of the same logical service as seen by the
// membership registry.
type Sibling struct {
	ProcessID  string `json:"process_id"`
	InstanceID string `json:"instance_id"`
	Service    string `json:"service"`
	Addr       string `json:"addr"`
	Status     string `json:"status"`
}

// MetricsSnapshot is the per-worker answer to the metrics-get topic.
type MetricsSnapshot struct {
	InstanceID  string             `msgpack:"instance_id"`
	CollectedAt time.Time          `msgpack:"collected_at"`
	Counters    map[string]float64 `msgpack:"counters"`
	Gauges      map[string]float64 `msgpack:"gauges"`
}

// AggregateSnapshot is the merge of per-worker snapshots into one view.
type AggregateSnapshot struct {
	Instances   []string           `msgpack:"instances"`
	CollectedAt time.Time          `msgpack:"collected_at"`
	Counters    map[string]float64 `msgpack:"counters"`
	Gauges      map[string]float64 `msgpack:"gauges"`
}
