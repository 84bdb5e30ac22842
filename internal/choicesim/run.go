package choicesim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/choice/experiment"
)

// Run loads the experiment, applies overrides, runs it and writes the
// report as YAML to out. Progress goes to logger.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	exp, err := loadExperiment(cfg.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.Workers > 0 {
		exp.Workers = cfg.Workers
	}
	if cfg.Seed != 0 {
		exp.Seed = cfg.Seed
	}
	if cfg.Trials > 0 {
		exp.Trials = cfg.Trials
	}

	logger.Info("running experiment",
		"culture", exp.Culture.Kind,
		"candidates", exp.Candidates,
		"voters", exp.Voters,
		"trials", exp.Trials,
		"rules", exp.Rules,
		"seed", exp.Seed,
	)
	start := time.Now()
	rep, err := experiment.Run(ctx, exp)
	if err != nil {
		logger.Error("experiment failed", "error", err)
		return err
	}
	logger.Info("experiment finished",
		"elapsed", time.Since(start),
		"condorcet_rate", rep.CondorcetRate,
		"mean_distance", rep.Distance.Mean,
	)
	for _, rs := range rep.Rules {
		logger.Debug("rule summary", "rule", rs.Rule, "decisive", rs.Decisive, "empty", rs.Empty)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return enc.Close()
}

func loadExperiment(path string) (experiment.Config, error) {
	if path == "" {
		return experiment.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return experiment.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := experiment.LoadConfig(f)
	if err != nil {
		return experiment.Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	return cfg, nil
}
