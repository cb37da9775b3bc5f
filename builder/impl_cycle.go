// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_cycle.go - Cycle(n): a directed ring v0→v1→…→v(n-1)→v0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i→(i+1)%n for i ascending; the closing arc is emitted last.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a directed ring of n nodes.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addIndexed(d, cfg, n)
		for i := 0; i < n; i++ {
			if err := d.addEdge(ids[i], ids[(i+1)%n], cfg.weight()); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
