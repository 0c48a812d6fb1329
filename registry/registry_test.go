package registry_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"
	"go.uber.org/zap/zaptest"

	"github.com/tarantool/go-skynet"
	"github.com/tarantool/go-skynet/crypto"
	"github.com/tarantool/go-skynet/internal/mocks"
	"github.com/tarantool/go-skynet/internal/testing/portal"
	"github.com/tarantool/go-skynet/keys"
	"github.com/tarantool/go-skynet/registry"
	"github.com/tarantool/go-skynet/revcache"
)

func newKeyPair(t *testing.T) keys.KeyPair {
	t.Helper()

	keyPair, _, err := keys.GenerateKeyPairAndSeed(keys.DefaultEntropy, keys.DefaultSeedLength)
	require.NoError(t, err)

	return keyPair
}

func newRegistry(t *testing.T, opts ...registry.Option) (*registry.Registry, *portal.Portal) {
	t.Helper()

	p := portal.New(t)
	opts = append([]registry.Option{registry.WithLogger(zaptest.NewLogger(t))}, opts...)

	return registry.New(p.Client(), opts...), p
}

func TestRegistry_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg, p := newRegistry(t)
	keyPair := newKeyPair(t)

	entry := registry.Entry{DataKey: "data", Data: []byte("hello world"), Revision: 0}
	require.NoError(t, reg.Set(ctx, keyPair, entry))

	stored, ok := p.Entry(keyPair.PublicKey, hashedData)
	require.True(t, ok)
	assert.Equal(t, []byte("hello world"), stored.Data)
	assert.Equal(t, uint64(0), stored.Revision)

	signed, err := reg.Get(ctx, keyPair.PublicKey, "data")
	require.NoError(t, err)
	assert.Equal(t, entry, signed.Entry)
	require.NoError(t, signed.Verify(keyPair.PublicKey, false))

	entry.Data = []byte("hello again")
	entry.Revision = 1
	require.NoError(t, reg.Set(ctx, keyPair, entry))

	signed, err = reg.Get(ctx, keyPair.PublicKey, "data")
	require.NoError(t, err)
	assert.Equal(t, entry, signed.Entry)
}

func TestRegistry_SetGet_EmptyData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg, _ := newRegistry(t)
	keyPair := newKeyPair(t)

	require.NoError(t, reg.Set(ctx, keyPair, registry.Entry{DataKey: "empty", Data: nil, Revision: 3}))

	signed, err := reg.Get(ctx, keyPair.PublicKey, "empty")
	require.NoError(t, err)
	assert.Empty(t, signed.Entry.Data)
	assert.Equal(t, uint64(3), signed.Entry.Revision)
}

func TestRegistry_HashedDataKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg, p := newRegistry(t)
	keyPair := newKeyPair(t)

	entry := registry.Entry{DataKey: hashedData, Data: []byte("x"), Revision: 1}
	require.NoError(t, reg.Set(ctx, keyPair, entry, registry.WithHashedDataKey()))

	_, ok := p.Entry(keyPair.PublicKey, hashedData)
	require.True(t, ok)

	signed, err := reg.Get(ctx, keyPair.PublicKey, hashedData, registry.WithHashedDataKey())
	require.NoError(t, err)
	assert.Equal(t, entry, signed.Entry)

	// The raw key hashes to the same wire key.
	signed, err = reg.Get(ctx, keyPair.PublicKey, "data")
	require.NoError(t, err)
	assert.Equal(t, "data", signed.Entry.DataKey)
	assert.Equal(t, []byte("x"), signed.Entry.Data)
}

func TestRegistry_Get_Request(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg, p := newRegistry(t)
	keyPair := newKeyPair(t)

	_, err := reg.Get(ctx, keyPair.PublicKey, "data", registry.WithTimeout(30))
	require.ErrorIs(t, err, registry.ErrNotFound)

	requests := p.Requests()
	require.Len(t, requests, 1)

	req := requests[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, registry.DefaultEndpointPath, req.Path)
	assert.Equal(t, "ed25519:"+keyPair.PublicKey.Hex(), req.Query.Get("publickey"))
	assert.Equal(t, hashedData, req.Query.Get("datakey"))
	assert.Equal(t, "30", req.Query.Get("timeout"))

	_, err = reg.Get(ctx, keyPair.PublicKey, "data")
	require.ErrorIs(t, err, registry.ErrNotFound)
	assert.Equal(t, "5", p.Requests()[1].Query.Get("timeout"))
}

func TestRegistry_Set_Request(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg, p := newRegistry(t)
	keyPair := newKeyPair(t)

	require.NoError(t, reg.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: []byte{1, 2}, Revision: 9}))

	requests := p.Requests()
	require.Len(t, requests, 1)

	req := requests[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, registry.DefaultEndpointPath, req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	var body struct {
		PublicKey struct {
			Algorithm string `json:"algorithm"`
			Key       []int  `json:"key"`
		} `json:"publickey"`
		DataKey   string `json:"datakey"`
		Revision  uint64 `json:"revision"`
		Data      []int  `json:"data"`
		Signature []int  `json:"signature"`
	}

	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "ed25519", body.PublicKey.Algorithm)
	require.Len(t, body.PublicKey.Key, crypto.PublicKeySize)
	assert.Equal(t, int(keyPair.PublicKey[0]), body.PublicKey.Key[0])
	assert.Equal(t, hashedData, body.DataKey)
	assert.Equal(t, uint64(9), body.Revision)
	assert.Equal(t, []int{1, 2}, body.Data)
	assert.Len(t, body.Signature, crypto.SignatureSize)
}

func TestRegistry_Get_InvalidSignature(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	keyPair := newKeyPair(t)

	tests := []struct {
		name   string
		tamper func(e *portal.Entry)
	}{
		{"revision", func(e *portal.Entry) { e.Revision++ }},
		{"data", func(e *portal.Entry) { e.Data[0] ^= 0x01 }},
		{"signature", func(e *portal.Entry) { e.Signature[0] ^= 0x01 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			reg, p := newRegistry(t)

			require.NoError(t, reg.Set(ctx, keyPair,
				registry.Entry{DataKey: "data", Data: []byte("hello world"), Revision: 4}))

			p.Tamper(test.tamper)

			_, err := reg.Get(ctx, keyPair.PublicKey, "data")
			require.ErrorIs(t, err, registry.ErrInvalidSignature)
		})
	}
}

func TestRegistry_Get_ForeignEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg, p := newRegistry(t)
	owner := newKeyPair(t)
	forger := newKeyPair(t)

	signed := registry.Sign(
		registry.Entry{DataKey: "data", Data: []byte("forged"), Revision: 100},
		forger.PrivateKey, false)

	// The portal stores a forged entry under the owner's key.
	p.Put(owner.PublicKey, hashedData, portal.Entry{
		Data:      signed.Entry.Data,
		Revision:  signed.Entry.Revision,
		Signature: signed.Signature[:],
	})

	_, err := reg.Get(ctx, owner.PublicKey, "data")
	require.ErrorIs(t, err, registry.ErrInvalidSignature)
}

func TestRegistry_Get_PortalResponse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	keyPair := newKeyPair(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>bad gateway</html>"},
		{"data not hex", `{"data":"zz","revision":1,"signature":""}`},
		{"signature not hex", `{"data":"00","revision":1,"signature":"xyz"}`},
		{"short signature", `{"data":"00","revision":1,"signature":"abcd"}`},
		{"negative revision", `{"data":"00","revision":-1,"signature":""}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			reg, p := newRegistry(t)
			p.RespondWith(http.StatusOK, test.body)

			_, err := reg.Get(ctx, keyPair.PublicKey, "data")

			var respErr registry.PortalResponseError
			require.ErrorAs(t, err, &respErr)
			assert.Equal(t, test.body, respErr.Body)
		})
	}
}

func TestRegistry_StatusErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	keyPair := newKeyPair(t)
	reg, p := newRegistry(t)

	p.RespondWith(http.StatusInternalServerError, "boom")

	_, err := reg.Get(ctx, keyPair.PublicKey, "data")
	require.Error(t, err)
	require.NotErrorIs(t, err, registry.ErrNotFound)

	var statusErr *skynet.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)

	err = reg.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: nil, Revision: 1})
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, []byte("boom"), statusErr.Body)
}

func TestRegistry_Set_RejectedByPortal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg, p := newRegistry(t)
	keyPair := newKeyPair(t)

	entry := registry.Entry{DataKey: "data", Data: []byte("v2"), Revision: 2}
	require.NoError(t, reg.Set(ctx, keyPair, entry))

	entry.Data = []byte("v1")
	entry.Revision = 1

	err := reg.Set(ctx, keyPair, entry)

	var statusErr *skynet.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)

	stored, ok := p.Entry(keyPair.PublicKey, hashedData)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), stored.Data)
}

func TestRegistry_Set_KeyPairMismatch(t *testing.T) {
	t.Parallel()

	keyA := newKeyPair(t)
	keyB := newKeyPair(t)

	// Seed half of A joined with the public half of B.
	var spliced crypto.PrivateKey
	copy(spliced[:32], keyA.PrivateKey[:32])
	copy(spliced[32:], keyB.PrivateKey[32:])

	tests := []struct {
		name    string
		keyPair keys.KeyPair
	}{
		{"foreign public key", keys.KeyPair{PublicKey: keyB.PublicKey, PrivateKey: keyA.PrivateKey}},
		{"spliced private key", keys.KeyPair{PublicKey: keyB.PublicKey, PrivateKey: spliced}},
		{"spliced private key with seed public key", keys.KeyPair{PublicKey: keyA.PublicKey, PrivateKey: spliced}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			reg, p := newRegistry(t)

			err := reg.Set(context.Background(), test.keyPair,
				registry.Entry{DataKey: "data", Data: nil, Revision: 1})
			require.ErrorIs(t, err, registry.ErrKeyPairMismatch)
			assert.Empty(t, p.Requests())
		})
	}
}

func TestRegistry_TransportError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mc := minimock.NewController(t)
	keyPair := newKeyPair(t)
	errNetwork := errors.New("connection refused")

	var methods []string

	transport := mocks.NewTransportMock(mc)
	transport.DoMock.Times(2).Set(func(_ context.Context, req *skynet.Request) (*skynet.Response, error) {
		assert.Equal(t, "/custom/registry", req.Path)

		methods = append(methods, req.Method)

		return nil, errNetwork
	})

	reg := registry.New(transport)

	_, err := reg.Get(ctx, keyPair.PublicKey, "data", registry.WithEndpointPath("/custom/registry"))
	require.ErrorIs(t, err, errNetwork)
	require.ErrorContains(t, err, "failed to fetch entry")

	err = reg.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: nil, Revision: 1},
		registry.WithEndpointPath("/custom/registry"))
	require.ErrorIs(t, err, errNetwork)
	require.ErrorContains(t, err, "failed to publish entry")

	// No retries.
	assert.Equal(t, []string{http.MethodGet, http.MethodPost}, methods)
	assert.Equal(t, uint64(2), transport.DoAfterCounter())
}

func TestRegistry_Get_ClosedPortal(t *testing.T) {
	t.Parallel()

	client := skynet.NewClient("http://127.0.0.1:1")
	reg := registry.New(client)

	_, err := reg.Get(context.Background(), newKeyPair(t).PublicKey, "data")
	require.ErrorAs(t, err, &skynet.TransportError{})
}

func TestRegistry_RevisionCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache, err := revcache.NewMemory(16)
	require.NoError(t, err)

	reg, p := newRegistry(t, registry.WithRevisionCache(cache))
	keyPair := newKeyPair(t)

	require.NoError(t, reg.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: nil, Revision: 5}))

	err = reg.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: nil, Revision: 5})
	require.ErrorIs(t, err, registry.ErrStaleRevision)

	var staleErr registry.StaleRevisionError
	require.ErrorAs(t, err, &staleErr)
	assert.Equal(t, uint64(5), staleErr.Known)
	assert.Equal(t, uint64(5), staleErr.Requested)

	// The stale publish never reached the portal.
	assert.Len(t, p.Requests(), 1)

	require.NoError(t, reg.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: nil, Revision: 6}))
}

func TestRegistry_RevisionCache_LearnsFromGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	keyPair := newKeyPair(t)

	writer, p := newRegistry(t)
	require.NoError(t, writer.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: nil, Revision: 10}))

	cache, err := revcache.NewMemory(16)
	require.NoError(t, err)

	reader := registry.New(p.Client(), registry.WithRevisionCache(cache))

	_, err = reader.Get(ctx, keyPair.PublicKey, "data")
	require.NoError(t, err)

	known, err := cache.Load(ctx, revcache.Key{PublicKey: keyPair.PublicKey, DataKey: hashedData})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), known.UnwrapOr(0))

	err = reader.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: nil, Revision: 9})
	require.ErrorIs(t, err, registry.ErrStaleRevision)
}

func TestRegistry_RevisionCache_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mc := minimock.NewController(t)
	keyPair := newKeyPair(t)
	errCacheDown := errors.New("cache is down")
	key := revcache.Key{PublicKey: keyPair.PublicKey, DataKey: hashedData}

	cache := mocks.NewCacheMock(mc)
	cache.LoadMock.Times(1).Set(func(_ context.Context, got revcache.Key) (option.Generic[uint64], error) {
		assert.Equal(t, key, got)
		return option.None[uint64](), errCacheDown
	})
	cache.StoreMock.Times(1).Set(func(_ context.Context, got revcache.Key, revision uint64) error {
		assert.Equal(t, key, got)
		assert.Equal(t, uint64(1), revision)

		return errCacheDown
	})

	reg, p := newRegistry(t, registry.WithRevisionCache(cache))

	err := reg.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: nil, Revision: 1})
	require.ErrorIs(t, err, errCacheDown)
	assert.Empty(t, p.Requests())

	signed := registry.Sign(registry.Entry{DataKey: "data", Data: []byte("v"), Revision: 1}, keyPair.PrivateKey, false)
	p.Put(keyPair.PublicKey, hashedData, portal.Entry{
		Data:      signed.Entry.Data,
		Revision:  signed.Entry.Revision,
		Signature: signed.Signature[:],
	})

	// A failing cache doesn't fail reads.
	got, err := reg.Get(ctx, keyPair.PublicKey, "data")
	require.NoError(t, err)
	assert.Equal(t, signed.Entry, got.Entry)
}

func TestRegistry_Metrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	promRegistry := prometheus.NewRegistry()
	reg, p := newRegistry(t, registry.WithMetrics(promRegistry))
	keyPair := newKeyPair(t)

	require.NoError(t, reg.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: []byte("v"), Revision: 1}))

	_, err := reg.Get(ctx, keyPair.PublicKey, "data")
	require.NoError(t, err)

	_, err = reg.Get(ctx, keyPair.PublicKey, "missing")
	require.ErrorIs(t, err, registry.ErrNotFound)

	p.Tamper(func(e *portal.Entry) { e.Revision = 2 })

	_, err = reg.Get(ctx, keyPair.PublicKey, "data")
	require.ErrorIs(t, err, registry.ErrInvalidSignature)

	expected := `
# HELP skynet_registry_requests_total Registry operations by operation and result.
# TYPE skynet_registry_requests_total counter
skynet_registry_requests_total{op="get",result="invalid_signature"} 1
skynet_registry_requests_total{op="get",result="not_found"} 1
skynet_registry_requests_total{op="get",result="ok"} 1
skynet_registry_requests_total{op="set",result="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(promRegistry, strings.NewReader(expected)))
}

func TestRegistry_Metrics_SharedRegisterer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	promRegistry := prometheus.NewRegistry()
	keyPair := newKeyPair(t)

	first, p := newRegistry(t, registry.WithMetrics(promRegistry))

	var second *registry.Registry

	require.NotPanics(t, func() {
		second = registry.New(p.Client(), registry.WithMetrics(promRegistry))
	})

	require.NoError(t, first.Set(ctx, keyPair, registry.Entry{DataKey: "data", Data: []byte("v"), Revision: 1}))

	_, err := first.Get(ctx, keyPair.PublicKey, "data")
	require.NoError(t, err)

	_, err = second.Get(ctx, keyPair.PublicKey, "data")
	require.NoError(t, err)

	expected := `
# HELP skynet_registry_requests_total Registry operations by operation and result.
# TYPE skynet_registry_requests_total counter
skynet_registry_requests_total{op="get",result="ok"} 2
skynet_registry_requests_total{op="set",result="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(promRegistry, strings.NewReader(expected)))
}

func TestRegistry_Metrics_ConflictingCollector(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	promRegistry := prometheus.NewRegistry()

	// Same name, different labels.
	promRegistry.MustRegister(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skynet",
		Subsystem: "registry",
		Name:      "requests_total",
		Help:      "Something else.",
	}, []string{"kind"}))

	var reg *registry.Registry

	p := portal.New(t)

	require.NotPanics(t, func() {
		reg = registry.New(p.Client(),
			registry.WithLogger(zaptest.NewLogger(t)),
			registry.WithMetrics(promRegistry))
	})

	_, err := reg.Get(ctx, newKeyPair(t).PublicKey, "data")
	require.ErrorIs(t, err, registry.ErrNotFound)
}
