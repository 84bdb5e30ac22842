// SPDX-License-Identifier: MIT
// Package: choice/rules
//
// elect.go — name-based rule dispatch.
//
// Names (case-insensitive): dictator, plurality, majority, approval,
// condorcet, borda. Options not meaningful to a rule are ignored.

package rules

import (
	"sort"
	"strings"
)

// Rule names accepted by Elect and Lookup.
const (
	NameDictator  = "dictator"
	NamePlurality = "plurality"
	NameMajority  = "majority"
	NameApproval  = "approval"
	NameCondorcet = "condorcet"
	NameBorda     = "borda"
)

// binder builds a Rule from a resolved configuration.
type binder func(cfg ruleConfig) (Rule, error)

var registry = map[string]binder{
	NameDictator: func(cfg ruleConfig) (Rule, error) {
		return func(e Electorate) (Winners, error) { return dictator(e, cfg) }, nil
	},
	NamePlurality: func(ruleConfig) (Rule, error) { return Plurality, nil },
	NameMajority:  func(ruleConfig) (Rule, error) { return Majority, nil },
	NameApproval: func(cfg ruleConfig) (Rule, error) {
		return func(e Electorate) (Winners, error) { return approval(e, cfg) }, nil
	},
	NameCondorcet: func(ruleConfig) (Rule, error) { return Condorcet, nil },
	NameBorda: func(cfg ruleConfig) (Rule, error) {
		if cfg.points != nil {
			points := cfg.points
			return func(e Electorate) (Winners, error) { return Positional(e, points) }, nil
		}
		scheme, err := ParseScheme(cfg.scheme)
		if err != nil {
			return nil, err
		}
		return func(e Electorate) (Winners, error) { return Borda(e, scheme) }, nil
	},
}

// Names returns the registered rule names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Lookup binds the named rule to opts. Randomized rules share one RNG
// across all calls of the returned Rule.
func Lookup(name string, opts ...Option) (Rule, error) {
	bind, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, rulesErrorf("Lookup", ErrUnknownRule)
	}
	rule, err := bind(newRuleConfig(opts...))
	if err != nil {
		return nil, rulesErrorf("Lookup", err)
	}

	return rule, nil
}

// Elect runs the named rule once on e.
func Elect(e Electorate, name string, opts ...Option) (Winners, error) {
	rule, err := Lookup(name, opts...)
	if err != nil {
		return nil, rulesErrorf("Elect", err)
	}

	return rule(e)
}
