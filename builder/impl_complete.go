// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_complete.go - Complete(n): every ordered pair (i≠j) joined.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Edges for i asc, then j asc, skipping i == j; n(n-1) arcs total.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n nodes.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addIndexed(d, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := d.addEdge(ids[i], ids[j], cfg.weight()); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
