package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vadiminshakov/gowal"

	"github.com/clustermesh/quorumcall/config"
	"github.com/clustermesh/quorumcall/core/aggregator"
	"github.com/clustermesh/quorumcall/core/dto"
	"github.com/clustermesh/quorumcall/core/requester"
	"github.com/clustermesh/quorumcall/core/responder"
	"github.com/clustermesh/quorumcall/core/stream"
	"github.com/clustermesh/quorumcall/io/archive"
	"github.com/clustermesh/quorumcall/io/gateway/grpc/client"
	"github.com/clustermesh/quorumcall/io/gateway/grpc/server"
	"github.com/clustermesh/quorumcall/io/registry"
	"github.com/clustermesh/quorumcall/io/transport"
	"github.com/clustermesh/quorumcall/metrics"
)

func main() {
	conf := config.Get()

	mreg := metrics.NewRegistry(conf.InstanceID)
	inbox := stream.NewInbox()
	pool := client.NewPool()
	defer pool.Close()

	var (
		members *registry.Registry
		bcast   aggregator.Broadcaster
	)
	if conf.Clustered {
		var err error
		members, err = registry.New(conf.RegistryEndpoints, conf.ServiceName)
		if err != nil {
			log.Fatalf("failed to connect to membership registry: %v", err)
		}
		defer members.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = members.Register(ctx, dto.Sibling{
			ProcessID:  conf.SelfID,
			InstanceID: conf.InstanceID,
			Addr:       conf.Nodeaddr,
		})
		cancel()
		if err != nil {
			log.Fatalf("failed to register worker: %v", err)
		}

		trans := transport.New(members, pool, inbox)
		bcast = requester.New(trans, conf.SelfID, conf.InstanceID)

		resp := responder.New(trans, conf.SelfID, conf.InstanceID, time.Duration(conf.Timeout)*time.Millisecond)
		resp.Handle(dto.TopicMetricsGet, mreg.Handler())
		inbox.Subscribe(resp.OnPacket)
	}

	var arch aggregator.Archive
	if conf.DBPath != "" {
		wal, err := gowal.NewWAL(gowal.Config{
			Dir:              conf.WALDir,
			Prefix:           "rounds_",
			SegmentThreshold: 1000,
			MaxSegments:      100,
			IsInSyncDiskMode: false,
		})
		if err != nil {
			log.Fatalf("failed to open wal: %v", err)
		}
		defer wal.Close()

		a, err := archive.New(wal, conf.DBPath)
		if err != nil {
			log.Fatalf("failed to open aggregate archive: %v", err)
		}
		defer a.Close()
		arch = a
	}

	agg := aggregator.New(bcast, mreg, arch, conf.Clustered)

	srv, err := server.New(conf, inbox, agg, mreg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	srv.Run(server.WhiteListChecker)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if members != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := members.Deregister(ctx); err != nil {
			log.Warnf("failed to deregister worker: %v", err)
		}
		cancel()
	}
	srv.Stop()
}
