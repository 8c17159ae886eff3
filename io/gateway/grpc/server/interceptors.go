package server

import (
	"context"
	"net"
	"slices"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// WhiteListChecker rejects RPCs from hosts outside the configured whitelist.
// Sibling workers and aggregate clients alike must call from a whitelisted
// host; everything else is refused before the handler runs.
func WhiteListChecker(ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (interface{}, error) {
	peerInfo, ok := peer.FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "no peer info in context")
	}

	host, _, err := net.SplitHostPort(peerInfo.Addr.String())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "malformed peer address %s", peerInfo.Addr)
	}

	srv := info.Server.(*Server)
	if !slices.Contains(srv.Config.Whitelist, host) {
		return nil, status.Errorf(codes.PermissionDenied, "host %s is not whitelisted", host)
	}

	return handler(ctx, req)
}
