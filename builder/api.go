// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// api.go - public entry-points for the builder package.
//
// Contract:
//   - One orchestrator: BuildDataset(bopts, cons...). Resolves cfg, runs cons in order
//     against a fresh draft, then fixes start/end and validates.
//   - BuildGraph is BuildDataset followed by core.Build.
//   - Determinism: same options, seed and constructor order ⇒ identical datasets.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

// Constructor appends nodes and directed edges to a draft dataset using the
// resolved builderConfig. Constructors must validate parameters before
// touching the draft and must emit nodes and edges in a documented order.
type Constructor func(d *draft, cfg builderConfig) error

// BuildDataset resolves bopts, applies all constructors in order and returns
// the resulting loader-form dataset.
//
// Endpoints default to the first and last node added; WithEndpoints overrides
// them. The dataset is validated before it is returned, so a successful call
// always yields something core.Build accepts.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or an empty result.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - core.ErrMalformedGraph when explicit endpoints are not in the node set.
//
// Complexity: Σ cost of each constructor plus O(V + E) validation.
func BuildDataset(bopts []BuilderOption, cons ...Constructor) (core.Dataset, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft(cfg.name)

	for i, fn := range cons {
		if fn == nil {
			return core.Dataset{}, fmt.Errorf("BuildDataset: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return core.Dataset{}, fmt.Errorf("BuildDataset: %w", err)
		}
	}
	if len(d.nodes) == 0 {
		return core.Dataset{}, fmt.Errorf("BuildDataset: no nodes produced: %w", ErrConstructFailed)
	}

	ds := d.dataset(cfg.start, cfg.end)
	if err := ds.Validate(); err != nil {
		return core.Dataset{}, fmt.Errorf("BuildDataset: %w", err)
	}

	return ds, nil
}

// BuildGraph builds the dataset and turns it into an immutable *core.Graph.
func BuildGraph(bopts []BuilderOption, gopts []core.GraphOption, cons ...Constructor) (*core.Graph, error) {
	ds, err := BuildDataset(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.Build(ds, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// All edges are directed. Symmetric topologies (Grid, Star) emit both arcs.

// Chain builds v0→v1→…→v(n-1) (n ≥ 2).
//func Chain(n int) Constructor

// Cycle builds a directed ring v0→v1→…→v(n-1)→v0 (n ≥ 3).
//func Cycle(n int) Constructor

// Star builds a hub "Center" with spokes to and from n-1 leaves (n ≥ 2).
//func Star(n int) Constructor

// Complete builds all n(n-1) ordered arcs (n ≥ 1).
//func Complete(n int) Constructor

// Grid builds a rows×cols 4-neighbourhood grid with IDs "r,c".
//func Grid(rows, cols int) Constructor

// RandomSparse includes each ordered pair (i≠j) independently with probability p.
//func RandomSparse(n int, p float64) Constructor
