// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs (nil funcs).
//     Constructors themselves never panic.
//   - Seeding is explicit via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors and weight draws.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
// Generated weights must be finite and ≥ 0 or BuildDataset fails validation.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithHeuristicFn overrides the per-node heuristic. Panics on nil.
func WithHeuristicFn(fn HeuristicFn) BuilderOption {
	if fn == nil {
		panic("builder: WithHeuristicFn(nil)")
	}
	return func(c *builderConfig) {
		c.heuristicFn = fn
	}
}

// WithName sets the dataset name.
func WithName(name string) BuilderOption {
	return func(c *builderConfig) {
		c.name = name
	}
}

// WithEndpoints pins the start and end nodes. Empty values keep the
// first/last-node defaults.
func WithEndpoints(start, end string) BuilderOption {
	return func(c *builderConfig) {
		c.start, c.end = start, end
	}
}
