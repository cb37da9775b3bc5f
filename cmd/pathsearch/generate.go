// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/core"
)

var errGenerate = errors.New("bad -generate value")

// generate builds a graph from kind:params.
//
//	grid:RxC      R×C grid, unit weights, Manhattan heuristic to the far corner
//	chain:N       N-node chain, unit weights, hops-remaining heuristic
//	cycle:N       N-node cycle, unit weights
//	star:N        hub plus N-1 leaves, unit weights
//	complete:N    all ordered pairs, integer weights 1..9
//	random:N:P    each ordered pair with probability P, integer weights 1..9
func generate(desc string, seed int64) (*core.Graph, error) {
	kind, params, _ := strings.Cut(desc, ":")
	opts := []builder.BuilderOption{builder.WithName(desc), builder.WithSeed(seed)}

	var con builder.Constructor
	switch kind {
	case "grid":
		rs, cs, ok := strings.Cut(params, "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q wants grid:RxC", errGenerate, desc)
		}
		rows, err := positive(rs)
		if err != nil {
			return nil, err
		}
		cols, err := positive(cs)
		if err != nil {
			return nil, err
		}
		opts = append(opts, builder.WithGridManhattan(rows, cols, builder.DefaultEdgeWeight))
		con = builder.Grid(rows, cols)
	case "chain", "cycle", "star", "complete":
		n, err := positive(params)
		if err != nil {
			return nil, err
		}
		switch kind {
		case "chain":
			opts = append(opts, builder.WithHeuristicFn(builder.ChainRemaining(n, builder.DefaultEdgeWeight)))
			con = builder.Chain(n)
		case "cycle":
			con = builder.Cycle(n)
		case "star":
			con = builder.Star(n)
		default:
			opts = append(opts, builder.WithIntWeight(1, 9))
			con = builder.Complete(n)
		}
	case "random":
		ns, ps, ok := strings.Cut(params, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q wants random:N:P", errGenerate, desc)
		}
		n, err := positive(ns)
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: probability %q", errGenerate, ps)
		}
		opts = append(opts, builder.WithIntWeight(1, 9))
		con = builder.RandomSparse(n, p)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", errGenerate, kind)
	}

	return builder.BuildGraph(opts, nil, con)
}

func positive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a positive integer", errGenerate, s)
	}

	return n, nil
}
