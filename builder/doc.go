// SPDX-License-Identifier: MIT

// Package builder generates deterministic search fixtures in loader form
// (core.Dataset) from composable topology constructors.
//
// Components:
//
//   - Orchestrators: BuildDataset(bopts, cons...) and BuildGraph(bopts, gopts, cons...).
//   - Constructors: Chain, Cycle, Star, Complete, Grid, RandomSparse.
//   - Node names (IDFn): DefaultIDFn ("0","1",…), LetterIDFn ("A",…,"Z","AA",…),
//     PrefixIDFn(p) (p+"0", p+"1",…). Grid always uses "r,c".
//   - Edge weights (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//     IntWeightFn, ExponentialWeightFn.
//   - Heuristics (HeuristicFn): ZeroHeuristic, ConstantHeuristic, ChainRemaining,
//     GridManhattan.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical datasets.
//   - Constructors return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed); option constructors panic on nil funcs.
//   - Composing constructors merges by node name: re-added nodes keep their first
//     heuristic, re-added edges take the latest weight.
//
// Example:
//
//	ds, err := builder.BuildDataset(
//	    []builder.BuilderOption{builder.WithSeed(1), builder.WithIntWeight(1, 9),
//	        builder.WithGridManhattan(8, 8, 1)},
//	    builder.Grid(8, 8),
//	)
package builder
