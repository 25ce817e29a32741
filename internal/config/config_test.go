package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-forge/internal/config"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50*time.Millisecond, cfg.Simulation.TickDelta())
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation:
  tick_rate: 10
player:
  base_life: 250
  base_armour: 5
loot:
  item_level: 40
redis:
  addr: localhost:6379
log:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Simulation.TickRate)
	assert.Equal(t, 200, cfg.Simulation.Ticks)
	assert.Equal(t, 100*time.Millisecond, cfg.Simulation.TickDelta())
	assert.Equal(t, 250.0, cfg.Player.BaseLife)
	assert.Equal(t, 100.0, cfg.Player.BaseMovementSpeed)
	assert.Equal(t, 5.0, cfg.Player.BaseArmour)
	assert.Equal(t, 40, cfg.Loot.ItemLevel)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "malformed yaml",
			body:  "simulation: [",
			field: "parsing config",
		},
		{
			name:  "zero tick rate",
			body:  "simulation:\n  tick_rate: 0\n",
			field: "simulation.tick_rate",
		},
		{
			name:  "non positive life",
			body:  "player:\n  base_life: 0\n",
			field: "player.base_life",
		},
		{
			name:  "item level below one",
			body:  "loot:\n  item_level: 0\n",
			field: "loot.item_level",
		},
		{
			name:  "unknown log format",
			body:  "log:\n  format: xml\n",
			field: "log.format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
