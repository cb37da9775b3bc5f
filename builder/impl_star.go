// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_star.go - Star(n): hub "Center" plus n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - "Center" is added first, then leaves cfg.idFn(0..n-2).
//   - For each leaf ascending: Center→leaf, then leaf→Center, same weight.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
	// CenterNodeID is the fixed name of the Star hub.
	CenterNodeID = "Center"
)

// Star returns a Constructor that builds a bidirectional star.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		d.addNode(CenterNodeID, cfg.heuristicFn(-1, CenterNodeID))
		leaves := addIndexed(d, cfg, n-1)
		for _, leaf := range leaves {
			w := cfg.weight()
			if err := d.addEdge(CenterNodeID, leaf, w); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
			if err := d.addEdge(leaf, CenterNodeID, w); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
