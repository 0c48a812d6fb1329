// Package config loads client settings from YAML and builds the portal
// client, the registry and its revision cache from them.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tarantool/go-skynet"
	"github.com/tarantool/go-skynet/marshaller"
	"github.com/tarantool/go-skynet/registry"
)

// Revision cache kinds.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheEtcd   = "etcd"
)

const (
	defaultHTTPTimeout     = 30 * time.Second
	defaultEtcdDialTimeout = 5 * time.Second
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete client configuration.
type Config struct {
	Portal        PortalConfig   `yaml:"portal"`
	Registry      RegistryConfig `yaml:"registry"`
	RevisionCache CacheConfig    `yaml:"revision_cache"`
}

// PortalConfig describes how to reach the portal.
type PortalConfig struct {
	URL         string          `yaml:"url"`
	APIKey      string          `yaml:"api_key,omitempty"`
	UserAgent   string          `yaml:"user_agent,omitempty"`
	HTTPTimeout time.Duration   `yaml:"http_timeout"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig limits outgoing requests. Zero values disable limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// RegistryConfig holds the defaults of every registry call.
type RegistryConfig struct {
	EndpointPath  string `yaml:"endpoint_path"`
	Timeout       int    `yaml:"timeout"`
	HashedDataKey bool   `yaml:"hashed_data_key"`
}

// CacheConfig selects and configures the revision cache.
type CacheConfig struct {
	Kind string     `yaml:"kind"`
	Size int        `yaml:"size,omitempty"`
	Etcd EtcdConfig `yaml:"etcd,omitempty"`
}

// EtcdConfig configures the etcd revision cache.
type EtcdConfig struct {
	Endpoints   []string      `yaml:"endpoints,omitempty"`
	Prefix      string        `yaml:"prefix,omitempty"`
	DialTimeout time.Duration `yaml:"dial_timeout,omitempty"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	cfg := Config{} //nolint:exhaustruct
	cfg.setDefaults()

	return cfg
}

func (c *Config) setDefaults() {
	if c.Portal.URL == "" {
		c.Portal.URL = skynet.DefaultPortalURL
	}

	if c.Portal.HTTPTimeout == 0 {
		c.Portal.HTTPTimeout = defaultHTTPTimeout
	}

	if c.Registry.EndpointPath == "" {
		c.Registry.EndpointPath = registry.DefaultEndpointPath
	}

	if c.Registry.Timeout == 0 {
		c.Registry.Timeout = registry.DefaultTimeout
	}

	switch c.RevisionCache.Kind {
	case "":
		c.RevisionCache.Kind = CacheNone
	case CacheMemory:
		if c.RevisionCache.Size == 0 {
			c.RevisionCache.Size = defaultMemorySize
		}
	case CacheEtcd:
		if c.RevisionCache.Etcd.DialTimeout == 0 {
			c.RevisionCache.Etcd.DialTimeout = defaultEtcdDialTimeout
		}
	}
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	switch {
	case c.Portal.HTTPTimeout < 0:
		return fmt.Errorf("%w: portal.http_timeout must not be negative", ErrInvalidConfig)
	case c.Portal.RateLimit.RPS < 0 || c.Portal.RateLimit.Burst < 0:
		return fmt.Errorf("%w: portal.rate_limit must not be negative", ErrInvalidConfig)
	case c.Registry.Timeout < 0:
		return fmt.Errorf("%w: registry.timeout must not be negative", ErrInvalidConfig)
	}

	switch c.RevisionCache.Kind {
	case CacheNone:
	case CacheMemory:
		if c.RevisionCache.Size <= 0 {
			return fmt.Errorf("%w: revision_cache.size must be positive", ErrInvalidConfig)
		}
	case CacheEtcd:
		if len(c.RevisionCache.Etcd.Endpoints) == 0 {
			return fmt.Errorf("%w: revision_cache.etcd.endpoints are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown revision_cache.kind %q", ErrInvalidConfig, c.RevisionCache.Kind)
	}

	return nil
}

// Parse decodes YAML data, fills in defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg, err := marshaller.NewTypedYamlMarshaller[Config]().Unmarshal(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err) //nolint:exhaustruct
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err //nolint:exhaustruct
	}

	return cfg, nil
}

// Load reads the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err) //nolint:exhaustruct
	}

	return Parse(data)
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := marshaller.NewTypedYamlMarshaller[Config]().Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}

	return data, nil
}
