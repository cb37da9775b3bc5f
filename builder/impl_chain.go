// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_chain.go - Chain(n): a directed path v0→v1→…→v(n-1).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Nodes via cfg.idFn in index order; edges i→i+1 ascending.
//   - Weights from cfg.weightFn(cfg.rng).

package builder

import "fmt"

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds a directed path of n nodes.
func Chain(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		ids := addIndexed(d, cfg, n)
		for i := 1; i < n; i++ {
			if err := d.addEdge(ids[i-1], ids[i], cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
		}

		return nil
	}
}
