// Package profile models a preference profile: an ordered electorate of
// voters, each holding a strict ranking over one shared candidate set.
//
// A Profile starts empty and is populated in one shot by exactly one of:
//
//	SetVoters               explicit rankings (candidates = sorted first voter)
//	GenerateUniform         impartial culture
//	GenerateMallows         Mallows culture around the spec order (φ, t)
//	GenerateNoisyConsensus  ground truth + Gaussian positional noise (σ)
//
// There is no incremental add/remove API; Rename returns a new Profile.
// Candidate specs are an int count or a list of labels (see SetCandidates).
//
// Randomness is injected per call with WithSeed or WithRand:
//
//	p := profile.New()
//	err := p.GenerateMallows(4, 25, 0.5, profile.WithSeed(42))
//
// All enumerates every profile of a given size and is exponential:
// (n!)^k profiles for n candidates and k voters.
//
// A Profile is not safe for concurrent mutation; concurrent reads are fine.
package profile
