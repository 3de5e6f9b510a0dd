package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Feed.Enabled)
	assert.NotEmpty(t, cfg.Feed.URL)
	assert.NotEmpty(t, cfg.Workflows.Dir)
	assert.NotEmpty(t, cfg.Log.File)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Feed.URL, cfg.Feed.URL)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[feed]
enabled = true
url = "ws://example.test/prices"
symbols = ["ETHUSD", "BTCUSD"]

[workflows]
dir = "/tmp/wf"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Feed.Enabled)
	assert.Equal(t, "ws://example.test/prices", cfg.Feed.URL)
	assert.Equal(t, []string{"ETHUSD", "BTCUSD"}, cfg.Feed.Symbols)
	assert.Equal(t, "/tmp/wf", cfg.Workflows.Dir)
	assert.Equal(t, Default().Log.File, cfg.Log.File, "unset section keeps default")
}

func TestLoadBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[feed\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
