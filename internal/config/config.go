// Package config resolves command configuration from the environment,
// command-line flags and an optional YAML rules file.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds massduel command configuration.
type Config struct {
	RulesPath string `env:"MASSDUEL_RULES"`
	Seed      int64  `env:"MASSDUEL_SEED"`
	Lang      string `env:"MASSDUEL_LANG" envDefault:"en"`
	LogPath   string `env:"MASSDUEL_LOG"`
	Color     bool   `env:"MASSDUEL_COLOR" envDefault:"true"`

	// Batch mode.
	Sim     bool
	SideA   string
	SideB   string
	Runs    int
	Workers int
	Out     string
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses environment and then flags into a Config, so flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.RulesPath, "rules", cfg.RulesPath, "YAML rules file (empty = built-in rules)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "display language tag")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "append match events to this file")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "colorize the board")
	fs.BoolVar(&cfg.Sim, "sim", false, "run automated matches instead of the interactive game")
	fs.StringVar(&cfg.SideA, "a", "strategic", "side A policy in -sim mode (random, greedy, strategic)")
	fs.StringVar(&cfg.SideB, "b", "random", "side B policy in -sim mode (random, greedy, strategic)")
	fs.IntVar(&cfg.Runs, "n", 1000, "number of matches in -sim mode")
	fs.IntVar(&cfg.Workers, "workers", 8, "worker goroutines in -sim mode")
	fs.StringVar(&cfg.Out, "out", "", "summary file in -sim mode (empty = stdout)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if cfg.Runs < 1 {
		return Config{}, fmt.Errorf("parse flags: -n must be >= 1, got %d", cfg.Runs)
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("parse flags: -workers must be >= 1, got %d", cfg.Workers)
	}
	return cfg, nil
}
