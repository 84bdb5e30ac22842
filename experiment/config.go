// SPDX-License-Identifier: MIT
// Package: choice/experiment
//
// config.go — YAML experiment configuration and its validation.
//
// Example:
//
//	culture:
//	  kind: mallows        # uniform | mallows | noisy
//	  phi: 0.6             # mallows dispersion, (0,1]
//	  transformation: 0    # mallows distance transformation t
//	  sigma: 0             # noisy positional deviation, ≥ 0
//	candidates: 4
//	voters: 11
//	trials: 500
//	rules: [plurality, majority, condorcet, borda]
//	scheme: borda_0
//	approval_length: 0     # 0 = random prefix per voter
//	seed: 7
//	workers: 0             # 0 = GOMAXPROCS

package experiment

import (
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/choice/rules"
)

// Culture kinds.
const (
	KindUniform = "uniform"
	KindMallows = "mallows"
	KindNoisy   = "noisy"
)

// Culture selects how voters are drawn.
type Culture struct {
	Kind           string  `yaml:"kind" json:"kind" validate:"required,oneof=uniform mallows noisy"`
	Phi            float64 `yaml:"phi,omitempty" json:"phi,omitempty" validate:"finite,gte=0,lte=1"`
	Transformation float64 `yaml:"transformation,omitempty" json:"transformation,omitempty" validate:"finite"`
	Sigma          float64 `yaml:"sigma,omitempty" json:"sigma,omitempty" validate:"finite,gte=0"`
}

// Config describes one simulation: trials independent profiles drawn from
// Culture, each scored by every rule in Rules.
type Config struct {
	Culture        Culture  `yaml:"culture" json:"culture"`
	Candidates     int      `yaml:"candidates" json:"candidates" validate:"required,min=1,max=26"`
	Voters         int      `yaml:"voters" json:"voters" validate:"required,min=1"`
	Trials         int      `yaml:"trials" json:"trials" validate:"required,min=1,max=1000000"`
	Rules          []string `yaml:"rules" json:"rules" validate:"required,min=1,dive,oneof=dictator plurality majority approval condorcet borda"`
	Scheme         string   `yaml:"scheme,omitempty" json:"scheme,omitempty" validate:"omitempty,oneof=borda_0 borda_1 dowdall"`
	ApprovalLength int      `yaml:"approval_length,omitempty" json:"approval_length,omitempty" validate:"gte=0,ltefield=Candidates"`
	Seed           int64    `yaml:"seed" json:"seed"`
	Workers        int      `yaml:"workers,omitempty" json:"workers,omitempty" validate:"gte=0,lte=256"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// NaN and ±Inf decode from YAML (.nan, .inf) and slip past gte/lte.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.Float32 && f.Kind() != reflect.Float64 {
			return false
		}
		x := f.Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	})

	return v
}

// DefaultConfig returns a small uniform-culture run over every rule.
func DefaultConfig() Config {
	return Config{
		Culture:    Culture{Kind: KindUniform},
		Candidates: 3,
		Voters:     5,
		Trials:     100,
		Rules:      rules.Names(),
		Scheme:     string(rules.BordaZero),
		Seed:       1,
	}
}

// Validate checks field constraints and the cross-field rules the tags
// cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Culture.Kind == KindMallows && c.Culture.Phi == 0 {
		return fmt.Errorf("%w: mallows culture requires phi in (0,1]", ErrInvalidConfig)
	}

	return nil
}

// LoadConfig decodes YAML from r over DefaultConfig and validates the
// result. Unknown keys are rejected. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrDecodeConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
