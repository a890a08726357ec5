package bridge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serialization-bridge/bridge"
	"serialization-bridge/internal/registry"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := bridge.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, registry.DefaultMaxDepth, cfg.Registry.MaxDepth)
	assert.Equal(t, 1000, cfg.Cache.Types)
	assert.Equal(t, 2000, cfg.Cache.Members)
	assert.False(t, cfg.DebugLogs)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
debug_logs: true
cache:
  types: 300
registry:
  max_depth: 20
host:
  namespaces:
    - example.com/engine
`)

	cfg, err := bridge.LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogs)
	assert.Equal(t, 300, cfg.Cache.Types)
	assert.Equal(t, 2000, cfg.Cache.Members, "defaults fill missing keys")
	assert.Equal(t, 20, cfg.Registry.MaxDepth)
	assert.Equal(t, []string{"example.com/engine"}, cfg.Host.Namespaces)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("BRIDGE_CACHE_MEMBERS", "42")

	cfg, err := bridge.LoadConfig(writeConfig(t, "cache:\n  members: 10\n"))
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Cache.Members)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative cache", "cache:\n  types: -1\n"},
		{"zero depth", "registry:\n  max_depth: 0\n"},
		{"empty namespace", "host:\n  namespaces: [\"\"]\n"},
		{"malformed", "cache: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bridge.LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}

	_, err := bridge.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := bridge.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, bridge.DefaultConfig().Cache, cfg.Cache)
}

func TestNewLogger(t *testing.T) {
	cfg := bridge.DefaultConfig()
	assert.NotNil(t, bridge.NewLogger(cfg))

	cfg.DebugLogs = true
	assert.NotNil(t, bridge.NewLogger(cfg))
}
