// SPDX-License-Identifier: MIT
// Package: choice/experiment
//
// report.go — aggregate statistics over all trials.

package experiment

import (
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/choice/ranking"
)

// RuleStats summarizes one rule across all trials.
type RuleStats struct {
	Rule string `yaml:"rule" json:"rule"`
	// Decisive is the fraction of trials with exactly one winner.
	Decisive float64 `yaml:"decisive" json:"decisive"`
	// Empty is the fraction of trials with no winner.
	Empty         float64 `yaml:"empty" json:"empty"`
	MeanWinners   float64 `yaml:"mean_winners" json:"mean_winners"`
	StdDevWinners float64 `yaml:"stddev_winners" json:"stddev_winners"`
	// CondorcetAgreement is the fraction of trials with a Condorcet winner
	// in which the rule elected exactly that candidate.
	CondorcetAgreement float64 `yaml:"condorcet_agreement" json:"condorcet_agreement"`
}

// DistanceStats summarizes voter-to-reference Kendall-tau distances.
type DistanceStats struct {
	Mean   float64 `yaml:"mean" json:"mean"`
	Median float64 `yaml:"median" json:"median"`
	StdDev float64 `yaml:"stddev" json:"stddev"`
	// Normalized is Mean divided by the maximum distance n(n-1)/2
	// (0 when n = 1).
	Normalized float64 `yaml:"normalized" json:"normalized"`
}

// Report is the outcome of Run.
type Report struct {
	Config Config `yaml:"config" json:"config"`
	// CondorcetRate is the fraction of trials that had a Condorcet winner.
	CondorcetRate float64       `yaml:"condorcet_rate" json:"condorcet_rate"`
	Rules         []RuleStats   `yaml:"rules" json:"rules"`
	Distance      DistanceStats `yaml:"distance" json:"distance"`
}

func buildReport(cfg Config, results []trialResult) (*Report, error) {
	trials := float64(len(results))
	rep := &Report{Config: cfg, Rules: make([]RuleStats, len(cfg.Rules))}

	withCondorcet := 0
	for _, res := range results {
		if len(res.condorcet) == 1 {
			withCondorcet++
		}
	}
	rep.CondorcetRate = float64(withCondorcet) / trials

	for i, name := range cfg.Rules {
		sizes := make([]float64, len(results))
		var decisive, empty, agree int
		for t, res := range results {
			w := res.winners[i]
			sizes[t] = float64(len(w))
			switch len(w) {
			case 0:
				empty++
			case 1:
				decisive++
			}
			if len(res.condorcet) == 1 && w.Equal(res.condorcet) {
				agree++
			}
		}
		mean, err := stats.Mean(sizes)
		if err != nil {
			return nil, experimentErrorf("Report", -1, err)
		}
		sd, err := stats.StandardDeviation(sizes)
		if err != nil {
			return nil, experimentErrorf("Report", -1, err)
		}
		rs := RuleStats{
			Rule:          name,
			Decisive:      float64(decisive) / trials,
			Empty:         float64(empty) / trials,
			MeanWinners:   mean,
			StdDevWinners: sd,
		}
		if withCondorcet > 0 {
			rs.CondorcetAgreement = float64(agree) / float64(withCondorcet)
		}
		rep.Rules[i] = rs
	}

	var dists stats.Float64Data
	for _, res := range results {
		for _, d := range res.distances {
			dists = append(dists, float64(d))
		}
	}
	var err error
	if rep.Distance.Mean, err = dists.Mean(); err != nil {
		return nil, experimentErrorf("Report", -1, err)
	}
	if rep.Distance.Median, err = dists.Median(); err != nil {
		return nil, experimentErrorf("Report", -1, err)
	}
	if rep.Distance.StdDev, err = dists.StandardDeviation(); err != nil {
		return nil, experimentErrorf("Report", -1, err)
	}
	if maxD := ranking.MaxDistance(cfg.Candidates); maxD > 0 {
		rep.Distance.Normalized = rep.Distance.Mean / float64(maxD)
	}

	return rep, nil
}
