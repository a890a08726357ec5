package bridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"serialization-bridge/internal/registry"
)

// Config holds the bridge settings.
type Config struct {
	DebugLogs bool           `mapstructure:"debug_logs"`
	Cache     CacheConfig    `mapstructure:"cache"`
	Registry  RegistryConfig `mapstructure:"registry"`
	Host      HostConfig     `mapstructure:"host"`
}

// CacheConfig sizes the reflection and hierarchy caches.
type CacheConfig struct {
	Types   int `mapstructure:"types"`
	Members int `mapstructure:"members"`
	Indexes int `mapstructure:"indexes"`
}

// RegistryConfig configures target discovery.
type RegistryConfig struct {
	MaxDepth int `mapstructure:"max_depth"`
}

// HostConfig describes the host.
type HostConfig struct {
	// Namespaces are the package path prefixes of host value objects.
	Namespaces []string `mapstructure:"namespaces"`
}

const envPrefix = "BRIDGE"

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Types:   1000,
			Members: 2000,
			Indexes: 64,
		},
		Registry: RegistryConfig{
			MaxDepth: registry.DefaultMaxDepth,
		},
	}
}

// LoadConfig reads the configuration from path, or from bridge.yaml in the
// working directory when path is empty. A missing bridge.yaml is not an
// error. BRIDGE_* environment variables override file values, e.g.
// BRIDGE_CACHE_TYPES=500.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("debug_logs", defaults.DebugLogs)
	v.SetDefault("cache.types", defaults.Cache.Types)
	v.SetDefault("cache.members", defaults.Cache.Members)
	v.SetDefault("cache.indexes", defaults.Cache.Indexes)
	v.SetDefault("registry.max_depth", defaults.Registry.MaxDepth)
	v.SetDefault("host.namespaces", []string{})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("bridge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every capacity and bound is usable.
func (c Config) Validate() error {
	switch {
	case c.Cache.Types <= 0:
		return fmt.Errorf("cache.types must be positive, got: %d", c.Cache.Types)
	case c.Cache.Members <= 0:
		return fmt.Errorf("cache.members must be positive, got: %d", c.Cache.Members)
	case c.Cache.Indexes <= 0:
		return fmt.Errorf("cache.indexes must be positive, got: %d", c.Cache.Indexes)
	case c.Registry.MaxDepth <= 0:
		return fmt.Errorf("registry.max_depth must be positive, got: %d", c.Registry.MaxDepth)
	}

	for _, ns := range c.Host.Namespaces {
		if strings.TrimSpace(ns) == "" {
			return errors.New("host.namespaces must not contain empty entries")
		}
	}

	return nil
}
