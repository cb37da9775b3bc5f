// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_grid.go - Grid(rows, cols): orthogonal 4-neighbourhood grid.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Node IDs use the fixed "r,c" scheme in row-major order; cfg.idFn is ignored.
//     The heuristic receives idx = r*cols + c.
//   - For each cell: Right then Bottom neighbour, each emitted as u→v then v→u
//     with one shared weight.
//
// Determinism:
//   - Stable node order (row-major) and edge order; weights fixed for a fixed seed.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the node name of cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols bidirectional grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				d.addNode(id, cfg.heuristicFn(r*cols+c, id))
			}
		}

		link := func(u, v string) error {
			w := cfg.weight()
			if err := d.addEdge(u, v, w); err != nil {
				return err
			}
			return d.addEdge(v, u, w)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
