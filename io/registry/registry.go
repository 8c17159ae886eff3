// Package registry tracks cluster membership in etcd.
//
// Every worker registers itself under /services/<service>/workers/<id> with
// a kept-alive lease, so a crashed worker disappears from the sibling list
// once its lease expires.
package registry

import (
	"context"
	"encoding/json"
	"path"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/clustermesh/quorumcall/core/dto"
)

// leaseTTL is the registration lease in seconds; a worker that stops
// renewing vanishes from the registry after at most this long.
const leaseTTL = 10

// ErrNotFound is returned by Lookup when no worker with the given process id
// is registered.
var ErrNotFound = errors.New("worker not found in registry")

// Registry is the etcd-backed membership store for one logical service.
type Registry struct {
	client  *clientv3.Client
	service string
	lease   clientv3.LeaseID
}

// New connects to the etcd endpoints and scopes the registry to the given
// logical service name.
func New(endpoints []string, service string) (*Registry, error) {
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   endpoints,
		DialTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect to registry")
	}

	return &Registry{client: cli, service: service}, nil
}

// Register announces this worker as online under a kept-alive lease.
func (r *Registry) Register(ctx context.Context, self dto.Sibling) error {
	self.Service = r.service
	self.Status = dto.StatusOnline

	val, err := json.Marshal(self)
	if err != nil {
		return errors.Wrap(err, "encode worker descriptor")
	}

	lease, err := r.client.Grant(ctx, leaseTTL)
	if err != nil {
		return errors.Wrap(err, "grant registration lease")
	}

	if _, err := r.client.Put(ctx, workerKey(r.service, self.ProcessID), string(val), clientv3.WithLease(lease.ID)); err != nil {
		return errors.Wrap(err, "register worker")
	}

	// keepalive must outlive the registration call
	ch, err := r.client.KeepAlive(context.Background(), lease.ID)
	if err != nil {
		return errors.Wrap(err, "keep registration lease alive")
	}
	go func() {
		for range ch {
		}
		log.Warnf("registration lease keepalive stopped for %s", self.ProcessID)
	}()

	r.lease = lease.ID
	log.Infof("registered worker %s (instance %s) in service %s", self.ProcessID, self.InstanceID, r.service)

	return nil
}

// ListSiblings returns every online worker of this service, including the
// caller itself. The list is fetched fresh on every call.
func (r *Registry) ListSiblings(ctx context.Context) ([]dto.Sibling, error) {
	resp, err := r.client.Get(ctx, workerPrefix(r.service), clientv3.WithPrefix())
	if err != nil {
		return nil, errors.Wrap(err, "list siblings")
	}

	values := make([][]byte, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		values = append(values, kv.Value)
	}

	return decodeSiblings(values, r.service), nil
}

// Lookup resolves a single worker by its process id.
func (r *Registry) Lookup(ctx context.Context, processID string) (dto.Sibling, error) {
	resp, err := r.client.Get(ctx, workerKey(r.service, processID))
	if err != nil {
		return dto.Sibling{}, errors.Wrap(err, "lookup worker")
	}
	if len(resp.Kvs) == 0 {
		return dto.Sibling{}, errors.Wrapf(ErrNotFound, "process %s", processID)
	}

	var sib dto.Sibling
	if err := json.Unmarshal(resp.Kvs[0].Value, &sib); err != nil {
		return dto.Sibling{}, errors.Wrap(err, "decode worker descriptor")
	}

	return sib, nil
}

// Deregister revokes the registration lease, removing this worker from the
// registry immediately instead of waiting for the lease to expire.
func (r *Registry) Deregister(ctx context.Context) error {
	if r.lease == 0 {
		return nil
	}
	if _, err := r.client.Revoke(ctx, r.lease); err != nil {
		return errors.Wrap(err, "revoke registration lease")
	}
	r.lease = 0

	return nil
}

// Close closes the underlying etcd client.
func (r *Registry) Close() error {
	return r.client.Close()
}

func workerPrefix(service string) string {
	return path.Join("/services", service, "workers") + "/"
}

func workerKey(service, processID string) string {
	return path.Join("/services", service, "workers", processID)
}

// decodeSiblings filters raw registry values down to online workers of the
// given service. Entries that fail to decode are skipped.
func decodeSiblings(values [][]byte, service string) []dto.Sibling {
	siblings := make([]dto.Sibling, 0, len(values))
	for _, raw := range values {
		var sib dto.Sibling
		if err := json.Unmarshal(raw, &sib); err != nil {
			log.Warnf("skipping malformed registry entry: %v", err)
			continue
		}
		if sib.Service != service || sib.Status != dto.StatusOnline {
			continue
		}
		siblings = append(siblings, sib)
	}

	return siblings
}
