package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lookout/internal/infrastructure/config"
)

func withConfigFlags(t *testing.T, path string, force bool) {
	t.Helper()
	prevFile, prevForce := configFile, configForce
	configFile, configForce = path, force
	t.Cleanup(func() { configFile, configForce = prevFile, prevForce })
}

func TestRunConfigInit_WritesAndForces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookout", "config.toml")
	withConfigFlags(t, path, false)

	require.NoError(t, runConfigInit(nil, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, toml.Unmarshal(data, &cfg))
	assert.Equal(t, config.DefaultConfig().Server.Listen, cfg.Server.Listen)

	require.NoError(t, os.WriteFile(path, []byte("[server]\nlisten = \"0.0.0.0:1\"\n"), 0o644))

	configForce = true
	require.NoError(t, runConfigInit(nil, nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "0.0.0.0:1")
}

func TestConfigTarget(t *testing.T) {
	withConfigFlags(t, "/etc/lookout.toml", false)
	path, err := configTarget()
	require.NoError(t, err)
	assert.Equal(t, "/etc/lookout.toml", path)

	configFile = ""
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err = configTarget()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "lookout", "config.toml"), path)
}
