package server

import (
	"github.com/clustermesh/quorumcall/core/dto"
	"github.com/clustermesh/quorumcall/io/gateway/grpc/proto"
)

func packetPbToDto(packet *proto.Packet) *dto.Packet {
	if packet == nil {
		return nil
	}

	return &dto.Packet{
		CorrelationID: packet.CorrelationId,
		Topic:         packet.Topic,
		SenderID:      packet.SenderId,
		Payload:       packet.Payload,
		IsReply:       packet.IsReply,
		ReplyTo:       packet.ReplyTo,
		OriginID:      packet.OriginId,
		InstanceID:    packet.InstanceId,
	}
}
