package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, 10, cfg.Table.SmallBlind)
	assert.Equal(t, 20, cfg.Table.BigBlind)
	assert.Equal(t, 100, cfg.Table.MinBuyIn)
	assert.Equal(t, 1_000_000, cfg.Table.MaxBuyIn)
	assert.Equal(t, 2500*time.Millisecond, cfg.ShowdownDelay())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holdemd.hcl")
	content := `
server {
  address   = "0.0.0.0:9000"
  log_level = "debug"
}

table {
  small_blind       = 25
  big_blind         = 50
  min_buy_in        = 1000
  max_buy_in        = 50000
  showdown_delay_ms = 1000
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Address)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 25, cfg.Table.SmallBlind)
	assert.Equal(t, 50, cfg.Table.BigBlind)
	assert.Equal(t, 1000, cfg.Table.MinBuyIn)
	assert.Equal(t, 50000, cfg.Table.MaxBuyIn)
	assert.Equal(t, time.Second, cfg.ShowdownDelay())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holdemd.hcl")
	content := `
table {
  small_blind = 5
  big_blind   = 10
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, 5, cfg.Table.SmallBlind)
	assert.Equal(t, 10, cfg.Table.BigBlind)
	assert.Equal(t, 100, cfg.Table.MinBuyIn)
	assert.Equal(t, 2500, cfg.Table.ShowdownDelayMS)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table.BigBlind = 5
	assert.Error(t, cfg.Validate(), "big blind below small blind")

	cfg = DefaultConfig()
	cfg.Table.MinBuyIn = 10
	assert.Error(t, cfg.Validate(), "buy-in below the big blind")

	cfg = DefaultConfig()
	cfg.Table.MaxBuyIn = 50
	assert.Error(t, cfg.Validate(), "minimum above maximum")
}

func TestLoadConfigRejectsBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("table {"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
