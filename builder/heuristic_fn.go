// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
)

// HeuristicFn yields the heuristic for the node at index idx named id.
// Results must be finite and ≥ 0.
type HeuristicFn func(idx int, id string) float64

// ZeroHeuristic assigns 0 to every node, which makes A* behave like Dijkstra.
func ZeroHeuristic(int, string) float64 { return 0 }

// ConstantHeuristic assigns h to every node. Panics if h < 0.
func ConstantHeuristic(h float64) HeuristicFn {
	if h < 0 {
		panic(fmt.Sprintf("ConstantHeuristic: h must be ≥ 0, got %g", h))
	}
	return func(int, string) float64 { return h }
}

// ChainRemaining is the hop count to the tail of an n-node Chain, scaled by
// minWeight. It is admissible whenever every edge weighs at least minWeight.
func ChainRemaining(n int, minWeight float64) HeuristicFn {
	if minWeight < 0 {
		panic(fmt.Sprintf("ChainRemaining: minWeight must be ≥ 0, got %g", minWeight))
	}
	return func(idx int, _ string) float64 {
		return math.Max(0, float64(n-1-idx)) * minWeight
	}
}

// GridManhattan is the Manhattan distance from a Grid cell (idx = r*cols+c)
// to the bottom-right corner, scaled by minWeight. It is consistent whenever
// every edge weighs at least minWeight.
func GridManhattan(rows, cols int, minWeight float64) HeuristicFn {
	if rows < 1 || cols < 1 || minWeight < 0 {
		panic(fmt.Sprintf("GridManhattan: require rows,cols ≥ 1 and minWeight ≥ 0, got %d,%d,%g", rows, cols, minWeight))
	}
	return func(idx int, _ string) float64 {
		r, c := idx/cols, idx%cols
		return float64((rows-1-r)+(cols-1-c)) * minWeight
	}
}

// WithGridManhattan is WithHeuristicFn(GridManhattan(rows, cols, minWeight)).
func WithGridManhattan(rows, cols int, minWeight float64) BuilderOption {
	return WithHeuristicFn(GridManhattan(rows, cols, minWeight))
}
