// Package choicesim wires the choicesim command: flag and environment
// parsing, logging and report output around experiment.Run.
package choicesim

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// envConfig holds the environment defaults for the command line flags.
type envConfig struct {
	ConfigPath string `env:"CHOICESIM_CONFIG"`
	Workers    int    `env:"CHOICESIM_WORKERS" envDefault:"0"`
	LogLevel   string `env:"CHOICESIM_LOG_LEVEL" envDefault:"info"`
}

// Config is the resolved command configuration. Flags win over the
// environment; zero overrides keep the experiment file's values.
type Config struct {
	ConfigPath string
	Workers    int
	Seed       int64
	Trials     int
	LogLevel   slog.Level
}

// ParseConfig reads the environment, then args through fs.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	var (
		cfg   Config
		level string
	)
	fs.StringVar(&cfg.ConfigPath, "config", ec.ConfigPath, "experiment YAML file (defaults when empty)")
	fs.IntVar(&cfg.Workers, "workers", ec.Workers, "parallel trials (0 = keep config)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "override the experiment seed (0 = keep config)")
	fs.IntVar(&cfg.Trials, "trials", 0, "override the trial count (0 = keep config)")
	fs.StringVar(&level, "log-level", ec.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("workers must be >= 0, got %d", cfg.Workers)
	}
	if cfg.Trials < 0 {
		return Config{}, fmt.Errorf("trials must be >= 0, got %d", cfg.Trials)
	}

	return cfg, nil
}
