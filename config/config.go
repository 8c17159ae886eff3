package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config carries the process identity and wiring resolved once at startup.
// The core packages receive it explicitly instead of reading the
// environment ad hoc.
type Config struct {
	SelfID            string
	InstanceID        string
	ServiceName       string
	Nodeaddr          string
	RegistryEndpoints []string
	Clustered         bool
	Timeout           uint64
	DBPath            string
	WALDir            string
	Whitelist         []string
}

// Get creates configuration from command-line arguments with environment
// variable fallbacks (WORKER_ID, INSTANCE_ID, SERVICE_NAME, CLUSTER_MODE).
func Get() *Config {
	selfid := flag.String("id", envOr("WORKER_ID", fmt.Sprintf("worker-%d", os.Getpid())), "process id of this worker")
	instanceid := flag.String("instance", envOr("INSTANCE_ID", ""), "stable instance id of this worker (defaults to the process id)")
	service := flag.String("service", envOr("SERVICE_NAME", "quorumcall"), "logical service name shared by all siblings")
	nodeaddr := flag.String("nodeaddr", "localhost:3050", "node address for the inter-worker transport")
	registry := flag.String("registry", "localhost:2379", "comma-separated membership registry (etcd) endpoints")
	clustered := flag.Bool("clustered", envOr("CLUSTER_MODE", "") == "1", "multi-worker mode; when false getAggregate answers locally")
	timeout := flag.Uint64("timeout", 10000, "ms, deadline for a broadcast round to collect all replies; also the budget a handler gets to answer one request")
	dbpath := flag.String("dbpath", "", "aggregate archive database path (empty disables the archive)")
	waldir := flag.String("waldir", "./wal", "aggregate archive wal directory")
	whitelist := flag.String("whitelist", "127.0.0.1", "allowed hosts")
	flag.Parse()

	instance := *instanceid
	if instance == "" {
		instance = *selfid
	}

	return &Config{
		SelfID:            *selfid,
		InstanceID:        instance,
		ServiceName:       *service,
		Nodeaddr:          *nodeaddr,
		RegistryEndpoints: strings.Split(*registry, ","),
		Clustered:         *clustered,
		Timeout:           *timeout,
		DBPath:            *dbpath,
		WALDir:            *waldir,
		Whitelist:         strings.Split(*whitelist, ","),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
