// Package config loads the forge configuration from YAML.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

// Config holds all configuration for the forge binary.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Loot       LootConfig       `yaml:"loot"`
	Redis      RedisConfig      `yaml:"redis"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig controls the tick loop.
type SimulationConfig struct {
	TickRate int `yaml:"tick_rate"` // ticks per second
	Ticks    int `yaml:"ticks"`
}

// TickDelta returns the duration of one tick
func (s SimulationConfig) TickDelta() time.Duration {
	if s.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.TickRate)
}

// PlayerConfig holds the player's base stats.
type PlayerConfig struct {
	BaseLife          float64 `yaml:"base_life"`
	BaseMovementSpeed float64 `yaml:"base_movement_speed"`
	BaseArmour        float64 `yaml:"base_armour"`
}

// LootConfig controls item generation.
type LootConfig struct {
	ItemLevel int `yaml:"item_level"`
}

// RedisConfig holds the item store connection. An empty address disables persistence.
type RedisConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SlogLevel maps the configured level onto slog
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the configuration with sensible defaults.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			TickRate: 20,
			Ticks:    200,
		},
		Player: PlayerConfig{
			BaseLife:          100,
			BaseMovementSpeed: 100,
		},
		Loot: LootConfig{
			ItemLevel: 1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML file over the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parsing config "+path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Simulation.TickRate <= 0 || c.Simulation.TickRate > 1000 {
		vb.Fieldf("simulation.tick_rate", "must be between 1 and 1000, got %d", c.Simulation.TickRate)
	}
	if c.Simulation.Ticks < 0 {
		vb.Fieldf("simulation.ticks", "must not be negative, got %d", c.Simulation.Ticks)
	}
	errors.ValidatePositive("player.base_life", c.Player.BaseLife, vb)
	if c.Player.BaseMovementSpeed < 0 {
		vb.Fieldf("player.base_movement_speed", "must not be negative, got %g", c.Player.BaseMovementSpeed)
	}
	if c.Player.BaseArmour < 0 {
		vb.Fieldf("player.base_armour", "must not be negative, got %g", c.Player.BaseArmour)
	}
	if c.Loot.ItemLevel < 1 {
		vb.Fieldf("loot.item_level", "must be at least 1, got %d", c.Loot.ItemLevel)
	}
	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", strings.ToLower(c.Log.Format), []string{"text", "json"}, vb)

	return vb.Build()
}
