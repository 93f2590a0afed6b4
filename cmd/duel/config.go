package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// envConfig holds defaults read from the environment. Flags set on the
// command line win.
type envConfig struct {
	Seed        int64  `env:"DUEL_SEED"`
	MagicDamage bool   `env:"DUEL_MAGIC_DAMAGE"`
	LogLevel    string `env:"DUEL_LOG_LEVEL" envDefault:"warn"`
}

func loadEnvConfig() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c envConfig) logLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid DUEL_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// applyAttackDefaults fills attack flags the user did not set
func (c envConfig) applyAttackDefaults(cmd *cobra.Command) {
	if !cmd.Flags().Changed("seed") {
		seed = c.Seed
	}
	if !cmd.Flags().Changed("magic-damage") {
		magicDamage = c.MagicDamage
	}
}
