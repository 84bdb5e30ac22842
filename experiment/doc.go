// Package experiment runs Monte Carlo simulations of voting rules.
//
// A Config (usually loaded from YAML with LoadConfig) names a culture, the
// electorate size, the rules to compare and a seed. Run draws one profile
// per trial, elects with every rule and reports decisiveness, empty-set
// frequency, winner-set size and agreement with the Condorcet winner,
// alongside how far voters sit from the reference order.
//
//	cfg, err := experiment.LoadConfig(f)
//	rep, err := experiment.Run(ctx, cfg)
//
// Trials run concurrently; each owns a random stream derived from
// (seed, trial), so reports do not depend on the worker count.
package experiment
