package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tarantool/go-skynet"
	"github.com/tarantool/go-skynet/config"
	"github.com/tarantool/go-skynet/internal/testing/portal"
	"github.com/tarantool/go-skynet/keys"
	"github.com/tarantool/go-skynet/marshaller"
	"github.com/tarantool/go-skynet/registry"
	"github.com/tarantool/go-skynet/revcache"
)

const fullConfig = `
portal:
  url: https://portal.example.org
  api_key: secret
  user_agent: Sia-Agent
  http_timeout: 10s
  rate_limit:
    rps: 2.5
    burst: 4
registry:
  endpoint_path: /skynet/registry
  timeout: 15
  hashed_data_key: true
revision_cache:
  kind: etcd
  etcd:
    endpoints:
      - http://127.0.0.1:2379
    prefix: /revisions/
    dial_timeout: 2s
`

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(fullConfig))
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Portal: config.PortalConfig{
			URL:         "https://portal.example.org",
			APIKey:      "secret",
			UserAgent:   "Sia-Agent",
			HTTPTimeout: 10 * time.Second,
			RateLimit:   config.RateLimitConfig{RPS: 2.5, Burst: 4},
		},
		Registry: config.RegistryConfig{
			EndpointPath:  "/skynet/registry",
			Timeout:       15,
			HashedDataKey: true,
		},
		RevisionCache: config.CacheConfig{
			Kind: config.CacheEtcd,
			Size: 0,
			Etcd: config.EtcdConfig{
				Endpoints:   []string{"http://127.0.0.1:2379"},
				Prefix:      "/revisions/",
				DialTimeout: 2 * time.Second,
			},
		},
	}, cfg)
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	assert.Equal(t, skynet.DefaultPortalURL, cfg.Portal.URL)
	assert.Equal(t, registry.DefaultEndpointPath, cfg.Registry.EndpointPath)
	assert.Equal(t, registry.DefaultTimeout, cfg.Registry.Timeout)
	assert.Equal(t, config.CacheNone, cfg.RevisionCache.Kind)

	cfg, err = config.Parse([]byte("revision_cache:\n  kind: memory\n"))
	require.NoError(t, err)
	assert.Equal(t, revcache.DefaultMemorySize, cfg.RevisionCache.Size)
}

func TestParse_Negative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		target error
	}{
		{"unknown cache kind", "revision_cache:\n  kind: redis\n", config.ErrInvalidConfig},
		{"etcd without endpoints", "revision_cache:\n  kind: etcd\n", config.ErrInvalidConfig},
		{"negative memory size", "revision_cache:\n  kind: memory\n  size: -1\n", config.ErrInvalidConfig},
		{"negative rate", "portal:\n  rate_limit:\n    rps: -1\n", config.ErrInvalidConfig},
		{"negative timeout", "registry:\n  timeout: -3\n", config.ErrInvalidConfig},
		{"unknown field", "portal:\n  proxy: x\n", nil},
		{"bad duration", "portal:\n  http_timeout: soon\n", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Parse([]byte(test.data))
			require.Error(t, err)

			if test.target != nil {
				require.ErrorIs(t, err, test.target)
			} else {
				require.ErrorAs(t, err, &marshaller.UnmarshalError{})
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "skyreg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullConfig), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.org", cfg.Portal.URL)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(fullConfig))
	require.NoError(t, err)

	data, err := cfg.Marshal()
	require.NoError(t, err)

	again, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestConfig_NewRevisionCache(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	cache, closeCache, err := cfg.NewRevisionCache(nil)
	require.NoError(t, err)
	assert.Nil(t, cache)
	require.NoError(t, closeCache())

	cfg.RevisionCache = config.CacheConfig{Kind: config.CacheMemory, Size: 8, Etcd: config.EtcdConfig{}} //nolint:exhaustruct

	cache, closeCache, err = cfg.NewRevisionCache(zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.IsType(t, &revcache.Memory{}, cache) //nolint:exhaustruct
	require.NoError(t, closeCache())
}

func TestConfig_NewRegistry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := portal.New(t)

	cfg, err := config.Parse([]byte("portal:\n  url: " + p.URL() + "\nrevision_cache:\n  kind: memory\n"))
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	client := cfg.NewClient(logger)
	assert.Equal(t, p.URL(), client.PortalURL())

	reg, closeRegistry, err := cfg.NewRegistry(client, logger, prometheus.NewRegistry())
	require.NoError(t, err)

	t.Cleanup(func() { _ = closeRegistry() })

	keyPair, _, err := keys.GenerateKeyPairAndSeed(keys.DefaultEntropy, keys.DefaultSeedLength)
	require.NoError(t, err)

	entry := registry.Entry{DataKey: "data", Data: []byte("hello world"), Revision: 1}
	require.NoError(t, reg.Set(ctx, keyPair, entry, cfg.CallOptions()...))

	signed, err := reg.Get(ctx, keyPair.PublicKey, "data", cfg.CallOptions()...)
	require.NoError(t, err)
	assert.Equal(t, entry, signed.Entry)

	// The memory cache rejects the same revision locally.
	err = reg.Set(ctx, keyPair, entry, cfg.CallOptions()...)
	require.ErrorIs(t, err, registry.ErrStaleRevision)

	requests := p.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "5", requests[1].Query.Get("timeout"))
}
