// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn        = DefaultIDFn        ("0","1","2",...)
//   - rng         = nil                (pure unless seeded)
//   - weightFn    = DefaultWeightFn    (constant DefaultEdgeWeight)
//   - heuristicFn = ZeroHeuristic
//   - start/end   = ""                 (first/last node added)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn        IDFn
	rng         *rand.Rand
	weightFn    WeightFn
	heuristicFn HeuristicFn

	name       string
	start, end string
}

// newBuilderConfig applies opts in order over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		heuristicFn: ZeroHeuristic,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }
