package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tarantool/go-skynet/internal/options"
	"github.com/tarantool/go-skynet/revcache"
)

const (
	// DefaultEndpointPath is the registry endpoint of a portal.
	DefaultEndpointPath = "/skynet/registry"
	// DefaultTimeout is the server-side lookup timeout sent with Get, in seconds.
	DefaultTimeout = 5
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRevisionCache makes Set refuse revisions that are not newer than the
// cached one, and records the revisions seen by Get and Set.
func WithRevisionCache(cache revcache.Cache) Option {
	return func(r *Registry) {
		r.cache = cache
	}
}

// WithMetrics registers request counters with reg. Registries sharing reg
// share the counters.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		r.registerer = reg
	}
}

type entryOptions struct {
	endpointPath  string
	hashedDataKey bool
	timeout       int
}

func defaultEntryOptions() entryOptions {
	return entryOptions{
		endpointPath:  DefaultEndpointPath,
		hashedDataKey: false,
		timeout:       DefaultTimeout,
	}
}

// CallOption configures a single Get or Set.
type CallOption = options.OptionCallback[entryOptions]

// WithEndpointPath overrides the registry endpoint path.
func WithEndpointPath(path string) CallOption {
	return func(opts *entryOptions) {
		opts.endpointPath = path
	}
}

// WithHashedDataKey marks the data key as already hashed (lower-case hex of
// a 32-byte digest). Get and Set of the same entry must agree on this.
func WithHashedDataKey() CallOption {
	return func(opts *entryOptions) {
		opts.hashedDataKey = true
	}
}

// WithTimeout sets the server-side lookup timeout of Get, in seconds.
func WithTimeout(seconds int) CallOption {
	return func(opts *entryOptions) {
		if seconds > 0 {
			opts.timeout = seconds
		}
	}
}
