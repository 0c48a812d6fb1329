// Package registry reads and writes entries of the signed mutable registry.
//
// An entry lives under a public key and a data key. Publishing signs the
// canonical hash of the entry with the owner's private key; fetching
// verifies that signature against the public key before anything is
// returned, so an untrusted portal can't forge or alter entries.
//
// See [Registry.Get] and [Registry.Set].
package registry

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tarantool/go-skynet"
	"github.com/tarantool/go-skynet/crypto"
	"github.com/tarantool/go-skynet/internal/options"
	"github.com/tarantool/go-skynet/keys"
	"github.com/tarantool/go-skynet/revcache"
)

// Transport sends portal requests. *skynet.Client implements it.
type Transport interface {
	Do(ctx context.Context, req *skynet.Request) (*skynet.Response, error)
}

// Registry fetches and publishes registry entries. It keeps no state between
// calls and is safe for concurrent use.
type Registry struct {
	transport Transport
	logger    *zap.Logger
	cache     revcache.Cache
	metrics   *metrics

	registerer prometheus.Registerer
}

// New creates a Registry sending requests through transport.
func New(transport Transport, opts ...Option) *Registry {
	r := &Registry{
		transport: transport,
		logger:    zap.NewNop(),
		cache:     nil,
		metrics:   nil,

		registerer: nil,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.registerer != nil {
		m, err := newMetrics(r.registerer)
		if err != nil {
			r.logger.Warn("registry metrics are not exported", zap.Error(err))
		}

		r.metrics = m
	}

	return r
}

// getResponse is the body of a successful lookup.
type getResponse struct {
	Data      string `json:"data"`
	Revision  uint64 `json:"revision"`
	Signature string `json:"signature"`
}

// setRequest is the body of a publish request.
type setRequest struct {
	PublicKey crypto.PublicKey `json:"publickey"`
	DataKey   HashedDataKey    `json:"datakey"`
	Revision  uint64           `json:"revision"`
	Data      crypto.ByteArray `json:"data"`
	Signature crypto.ByteArray `json:"signature"`
}

// Get fetches the entry stored under publicKey and dataKey and verifies its
// signature. It returns ErrInvalidSignature if verification fails, ErrNotFound
// if the portal has no such entry and a PortalResponseError if the response
// can't be decoded. Transport errors are returned wrapped and never retried.
func (r *Registry) Get(
	ctx context.Context,
	publicKey crypto.PublicKey,
	dataKey string,
	callOpts ...CallOption,
) (SignedEntry, error) {
	opts := options.ApplyOptions[entryOptions](defaultEntryOptions, callOpts)
	hashedDataKey := NormalizeDataKey(dataKey, opts.hashedDataKey)

	query := url.Values{}
	query.Set("publickey", publicKey.String())
	query.Set("datakey", string(hashedDataKey))
	query.Set("timeout", strconv.Itoa(opts.timeout))

	logger := r.logger.With(
		zap.Stringer("publickey", publicKey),
		zap.String("datakey", string(hashedDataKey)))

	resp, err := r.transport.Do(ctx, &skynet.Request{
		Method: http.MethodGet,
		Path:   opts.endpointPath,
		Query:  query,
		Header: nil,
		Body:   nil,
	})
	if err != nil {
		var statusErr *skynet.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			r.metrics.observe(opGet, resultNotFound)
			return SignedEntry{}, fmt.Errorf("%w: %s/%s", ErrNotFound, publicKey, hashedDataKey)
		}

		r.metrics.observe(opGet, resultTransport)

		return SignedEntry{}, fmt.Errorf("failed to fetch entry: %w", err)
	}

	signed, err := decodeGetResponse(resp.Body, dataKey)
	if err != nil {
		r.metrics.observe(opGet, resultPortalResponse)
		return SignedEntry{}, err
	}

	if err := signed.Verify(publicKey, opts.hashedDataKey); err != nil {
		r.metrics.observe(opGet, resultInvalidSignature)
		logger.Warn("rejected registry entry with invalid signature",
			zap.Uint64("revision", signed.Entry.Revision))

		return SignedEntry{}, err
	}

	if r.cache != nil {
		key := revcache.Key{PublicKey: publicKey, DataKey: string(hashedDataKey)}
		if err := r.cache.Store(ctx, key, signed.Entry.Revision); err != nil {
			logger.Warn("failed to cache revision", zap.Error(err))
		}
	}

	r.metrics.observe(opGet, resultOK)
	logger.Debug("fetched registry entry", zap.Uint64("revision", signed.Entry.Revision))

	return signed, nil
}

func decodeGetResponse(body []byte, dataKey string) (SignedEntry, error) {
	var parsed getResponse

	if err := json.Unmarshal(body, &parsed); err != nil {
		return SignedEntry{}, errPortalResponse(body, err)
	}

	data, err := hex.DecodeString(parsed.Data)
	if err != nil {
		return SignedEntry{}, errPortalResponse(body, fmt.Errorf("data: %w", err))
	}

	rawSignature, err := hex.DecodeString(parsed.Signature)
	if err != nil {
		return SignedEntry{}, errPortalResponse(body, fmt.Errorf("signature: %w", err))
	}

	signature, err := crypto.SignatureFromBytes(rawSignature)
	if err != nil {
		return SignedEntry{}, errPortalResponse(body, err)
	}

	return SignedEntry{
		Entry: Entry{
			DataKey:  dataKey,
			Data:     data,
			Revision: parsed.Revision,
		},
		Signature: signature,
	}, nil
}

// Set signs entry with keyPair and publishes it. The caller chooses the
// revision; unless a revision cache is configured, nothing checks it against
// earlier revisions and the portal's own policy decides between competing
// publishers. Transport errors are returned wrapped and never retried.
func (r *Registry) Set(
	ctx context.Context,
	keyPair keys.KeyPair,
	entry Entry,
	callOpts ...CallOption,
) error {
	if !keyPair.PrivateKey.Matches(keyPair.PublicKey) {
		return ErrKeyPairMismatch
	}

	opts := options.ApplyOptions[entryOptions](defaultEntryOptions, callOpts)
	hashedDataKey := NormalizeDataKey(entry.DataKey, opts.hashedDataKey)
	cacheKey := revcache.Key{PublicKey: keyPair.PublicKey, DataKey: string(hashedDataKey)}

	logger := r.logger.With(
		zap.Stringer("publickey", keyPair.PublicKey),
		zap.String("datakey", string(hashedDataKey)),
		zap.Uint64("revision", entry.Revision))

	if err := r.checkRevision(ctx, cacheKey, entry.Revision); err != nil {
		return err
	}

	body, err := r.encodeSetRequest(keyPair, entry, hashedDataKey, opts.hashedDataKey)
	if err != nil {
		return err
	}

	_, err = r.transport.Do(ctx, &skynet.Request{
		Method: http.MethodPost,
		Path:   opts.endpointPath,
		Query:  nil,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   body,
	})
	if err != nil {
		r.metrics.observe(opSet, resultTransport)
		return fmt.Errorf("failed to publish entry: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Store(ctx, cacheKey, entry.Revision); err != nil {
			logger.Warn("failed to cache revision", zap.Error(err))
		}
	}

	r.metrics.observe(opSet, resultOK)
	logger.Debug("published registry entry")

	return nil
}

func (r *Registry) checkRevision(ctx context.Context, key revcache.Key, revision uint64) error {
	if r.cache == nil {
		return nil
	}

	known, err := r.cache.Load(ctx, key)
	if err != nil {
		r.metrics.observe(opSet, resultCache)
		return fmt.Errorf("failed to load cached revision: %w", err)
	}

	if current, ok := known.Get(); ok && revision <= current {
		r.metrics.observe(opSet, resultStaleRevision)
		return errStaleRevision(current, revision)
	}

	return nil
}

func (r *Registry) encodeSetRequest(
	keyPair keys.KeyPair,
	entry Entry,
	hashedDataKey HashedDataKey,
	alreadyHashed bool,
) ([]byte, error) {
	hash := CanonicalHash(entry, alreadyHashed)

	signature, err := crypto.NewEd25519(keyPair.PrivateKey).Sign(hash[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign entry: %w", err)
	}

	body, err := json.Marshal(setRequest{
		PublicKey: keyPair.PublicKey,
		DataKey:   hashedDataKey,
		Revision:  entry.Revision,
		Data:      entry.Data,
		Signature: signature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode entry: %w", err)
	}

	return body, nil
}
