package config

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	etcd "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"

	"github.com/tarantool/go-skynet"
	"github.com/tarantool/go-skynet/registry"
	"github.com/tarantool/go-skynet/revcache"
)

const defaultMemorySize = revcache.DefaultMemorySize

// ClientOptions returns the portal client options described by c.
func (c Config) ClientOptions(logger *zap.Logger) []skynet.Option {
	return []skynet.Option{
		skynet.WithAPIKey(c.Portal.APIKey),
		skynet.WithUserAgent(c.Portal.UserAgent),
		skynet.WithRateLimit(c.Portal.RateLimit.RPS, c.Portal.RateLimit.Burst),
		skynet.WithDoer(&http.Client{Timeout: c.Portal.HTTPTimeout}), //nolint:exhaustruct
		skynet.WithLogger(logger),
	}
}

// NewClient creates a portal client. Extra options are applied last.
func (c Config) NewClient(logger *zap.Logger, opts ...skynet.Option) *skynet.Client {
	return skynet.NewClient(c.Portal.URL, append(c.ClientOptions(logger), opts...)...)
}

// CallOptions returns the per-call registry options described by c.
func (c Config) CallOptions() []registry.CallOption {
	opts := []registry.CallOption{
		registry.WithEndpointPath(c.Registry.EndpointPath),
		registry.WithTimeout(c.Registry.Timeout),
	}

	if c.Registry.HashedDataKey {
		opts = append(opts, registry.WithHashedDataKey())
	}

	return opts
}

// NewRevisionCache creates the configured revision cache. It returns a nil
// cache for CacheNone. The returned function releases the cache's resources.
func (c Config) NewRevisionCache(logger *zap.Logger) (revcache.Cache, func() error, error) {
	noop := func() error { return nil }

	if logger == nil {
		logger = zap.NewNop()
	}

	switch c.RevisionCache.Kind {
	case CacheMemory:
		cache, err := revcache.NewMemory(c.RevisionCache.Size)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create memory revision cache: %w", err)
		}

		return cache, noop, nil
	case CacheEtcd:
		client, err := etcd.New(etcd.Config{ //nolint:exhaustruct
			Endpoints:   c.RevisionCache.Etcd.Endpoints,
			DialTimeout: c.RevisionCache.Etcd.DialTimeout,
			Logger:      logger.Named("etcd"),
		})
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to etcd: %w", err)
		}

		return revcache.NewEtcd(client, c.RevisionCache.Etcd.Prefix), client.Close, nil
	default:
		return nil, noop, nil
	}
}

// NewRegistry creates a registry on top of transport with the configured
// revision cache. reg may be nil to skip metrics.
func (c Config) NewRegistry(
	transport registry.Transport,
	logger *zap.Logger,
	reg prometheus.Registerer,
) (*registry.Registry, func() error, error) {
	cache, closeCache, err := c.NewRevisionCache(logger)
	if err != nil {
		return nil, closeCache, err
	}

	opts := []registry.Option{registry.WithLogger(logger)}

	if cache != nil {
		opts = append(opts, registry.WithRevisionCache(cache))
	}

	if reg != nil {
		opts = append(opts, registry.WithMetrics(reg))
	}

	return registry.New(transport, opts...), closeCache, nil
}
