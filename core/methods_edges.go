// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge queries: Cost, HasEdge, Edges, EdgeCount, PathCost.
// Determinism:
//   - Edges() lists edges grouped by source node (first-seen order), each group
//     in declaration order.

package core

import "fmt"

// Cost returns the weight of the directed edge from→to.
//
// Errors:
//   - ErrUnknownNode: if from or to does not exist.
//   - ErrNoSuchEdge: if both exist but no from→to edge was declared.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Cost(from, to string) (float64, error) {
	if _, ok := g.nodes[from]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}
	i, ok := g.position[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %q→%q", ErrNoSuchEdge, from, to)
	}

	return g.adjacency[from][i].Weight, nil
}

// HasEdge reports whether a directed edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.position[from][to]

	return ok
}

// Edges returns copies of all edges.
//
// Complexity:
//   - Time O(V + E), Space O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, name := range g.order {
		for _, e := range g.adjacency[name] {
			out = append(out, *e)
		}
	}

	return out
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// PathCost sums the edge weights along path. A path of zero or one node costs 0.
//
// Errors:
//   - ErrUnknownNode / ErrNoSuchEdge: if any consecutive pair is not an edge.
//
// Complexity:
//   - Time O(len(path)), Space O(1).
func (g *Graph) PathCost(path []string) (float64, error) {
	if len(path) == 1 && !g.HasNode(path[0]) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, path[0])
	}
	var total float64
	for i := 1; i < len(path); i++ {
		w, err := g.Cost(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}
