// Package config loads the headless server's runtime configuration:
// a server.yaml file plus environment overrides, following
// orbas1-Synnergy/synnergy-network/pkg/config's viper.Unmarshal pattern and
// cmd/cli/gateway_node.go's godotenv.Load()-before-viper ordering.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the unified configuration for a blockcore server process.
type Config struct {
	Server struct {
		TickIntervalMS int    `mapstructure:"tick_interval_ms"`
		RandomTicks    int    `mapstructure:"random_ticks_per_section"`
		MaxNeighborRec int    `mapstructure:"max_neighbor_recursion"`
		Address        string `mapstructure:"address"`
	} `mapstructure:"server"`

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
}

// Default returns the configuration this core runs with when no
// server.yaml or overrides are present.
func Default() Config {
	var c Config
	c.Server.TickIntervalMS = 50
	c.Server.RandomTicks = 3
	c.Server.MaxNeighborRec = 64
	c.Server.Address = ":25585"
	c.Logging.Level = "info"
	return c
}

// Load reads server.yaml (searched in the working directory and ./config),
// merges a .env file via godotenv if present, and applies BLOCKCORE_*
// environment overrides on top. A missing server.yaml is not an error —
// the defaults set on v before ReadInConfig carry through untouched.
func Load(path string) (Config, error) {
	cfg := Default()

	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("server")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetDefault("server.tick_interval_ms", cfg.Server.TickIntervalMS)
	v.SetDefault("server.random_ticks_per_section", cfg.Server.RandomTicks)
	v.SetDefault("server.max_neighbor_recursion", cfg.Server.MaxNeighborRec)
	v.SetDefault("server.address", cfg.Server.Address)
	v.SetDefault("logging.level", cfg.Logging.Level)

	v.SetEnvPrefix("BLOCKCORE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
