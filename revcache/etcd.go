package revcache

import (
	"context"
	"fmt"
	"strings"

	"github.com/tarantool/go-option"
	etcd "go.etcd.io/etcd/client/v3"
)

const (
	// DefaultEtcdPrefix is the key prefix used when none is given.
	DefaultEtcdPrefix = "/skynet/revisions/"

	defaultEtcdRetries = 8
)

// Client defines the minimal interface needed for etcd operations.
// *clientv3.Client is adapted to it by NewEtcd; tests supply their own.
type Client interface {
	// Txn creates a new transaction.
	Txn(ctx context.Context) etcd.Txn
}

// etcdClientAdapter wraps etcd.Client to implement our Client interface.
type etcdClientAdapter struct {
	client *etcd.Client
}

func (a *etcdClientAdapter) Txn(ctx context.Context) etcd.Txn {
	return a.client.Txn(ctx)
}

// Etcd is a Cache shared between processes through etcd. Records are
// msgpack-encoded and updated with compare-and-swap on the key's mod revision.
type Etcd struct {
	client  Client
	prefix  string
	retries int
}

var _ Cache = &Etcd{} //nolint:exhaustruct

// NewEtcd creates an etcd cache on top of a connected client.
func NewEtcd(client *etcd.Client, prefix string) *Etcd {
	return NewEtcdWithClient(&etcdClientAdapter{client: client}, prefix)
}

// NewEtcdWithClient creates an etcd cache using a custom Client implementation.
func NewEtcdWithClient(client Client, prefix string) *Etcd {
	if prefix == "" {
		prefix = DefaultEtcdPrefix
	}

	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &Etcd{
		client:  client,
		prefix:  prefix,
		retries: defaultEtcdRetries,
	}
}

func (e *Etcd) name(key Key) string {
	return e.prefix + key.String()
}

type etcdRecord struct {
	revision    uint64
	modRevision int64
}

func (e *Etcd) get(ctx context.Context, name string) (option.Generic[etcdRecord], error) {
	resp, err := e.client.Txn(ctx).Then(etcd.OpGet(name)).Commit()
	if err != nil {
		return option.None[etcdRecord](), fmt.Errorf("transaction failed: %w", err)
	}

	for _, op := range resp.Responses {
		rangeResp := op.GetResponseRange()
		if rangeResp == nil {
			continue
		}

		for _, kv := range rangeResp.Kvs {
			revision, err := decodeRecord(kv.Value)
			if err != nil {
				return option.None[etcdRecord](), err
			}

			return option.Some(etcdRecord{revision: revision, modRevision: kv.ModRevision}), nil
		}
	}

	return option.None[etcdRecord](), nil
}

// Load implements Cache interface.
func (e *Etcd) Load(ctx context.Context, key Key) (option.Generic[uint64], error) {
	rec, err := e.get(ctx, e.name(key))
	if err != nil {
		return option.None[uint64](), err
	}

	current, ok := rec.Get()
	if !ok {
		return option.None[uint64](), nil
	}

	return option.Some(current.revision), nil
}

// Store implements Cache interface. It retries when another writer updates
// the same key between the read and the write, and gives up with ErrConflict.
func (e *Etcd) Store(ctx context.Context, key Key, revision uint64) error {
	name := e.name(key)

	value, err := encodeRecord(revision)
	if err != nil {
		return err
	}

	for range e.retries {
		rec, err := e.get(ctx, name)
		if err != nil {
			return err
		}

		var cmp etcd.Cmp

		current, ok := rec.Get()

		switch {
		case ok && current.revision >= revision:
			return nil
		case ok:
			cmp = etcd.Compare(etcd.ModRevision(name), "=", current.modRevision)
		default:
			cmp = etcd.Compare(etcd.CreateRevision(name), "=", 0)
		}

		resp, err := e.client.Txn(ctx).If(cmp).Then(etcd.OpPut(name, string(value))).Commit()
		if err != nil {
			return fmt.Errorf("transaction failed: %w", err)
		}

		if resp.Succeeded {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrConflict, name)
}
